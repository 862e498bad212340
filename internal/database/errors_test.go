// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"valid lowercase", "65a1f0c2e4b0a1b2c3d4e5f6", "65a1f0c2e4b0a1b2c3d4e5f6", false},
		{"valid uppercase", "65A1F0C2E4B0A1B2C3D4E5F6", "65a1f0c2e4b0a1b2c3d4e5f6", false},
		{"twelve byte string is raw bytes", "abcdefghijkl", "6162636465666768696a6b6c", false},
		{"too short", "65a1f0c2", "", true},
		{"eleven bytes", "abcdefghijk", "", true},
		{"too long", "65a1f0c2e4b0a1b2c3d4e5f6aa", "", true},
		{"non hex", "zza1f0c2e4b0a1b2c3d4e5f6", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			oid, err := parseID(tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Fatalf("parseID(%q) error = %v, want ErrInvalidID", tt.id, err)
				}
				if oid != primitive.NilObjectID {
					t.Errorf("parseID(%q) = %v, want NilObjectID", tt.id, oid)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseID(%q) unexpected error: %v", tt.id, err)
			}
			if oid.Hex() != tt.want {
				t.Errorf("parseID(%q) = %s, want %s", tt.id, oid.Hex(), tt.want)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup: %w", &NotFoundError{Entity: "Album"})

	if !IsNotFound(err) {
		t.Fatal("IsNotFound should see through wrapping")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "Album not found" {
		t.Errorf("got %v, want Album not found", nf)
	}
	if IsNotFound(errors.New("Album not found")) {
		t.Error("plain error with the same text is not a NotFoundError")
	}
}
