// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/validation"
)

func TestSongsRequest_KeepsRawValues(t *testing.T) {
	cfg := &config.APIConfig{DefaultPageSize: 10}
	req := httptest.NewRequest(http.MethodGet, "/songs?original_name=%20blue%20&album_code=kob", nil)

	s := songsRequest(req, cfg)
	if s.OriginalName != " blue " {
		t.Errorf("OriginalName = %q, want surrounding spaces kept", s.OriginalName)
	}
	if s.AlbumCode != "kob" {
		t.Errorf("AlbumCode = %q, want kob", s.AlbumCode)
	}
	if s.Limit != 10 || s.Offset != 0 {
		t.Errorf("page = %d/%d, want 10/0", s.Limit, s.Offset)
	}
}

func TestPageRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     PageRequest
		wantErr bool
	}{
		{"defaults", PageRequest{Limit: 10, Offset: 0}, false},
		{"upper bound", PageRequest{Limit: 1000, Offset: 5}, false},
		{"zero limit", PageRequest{Limit: 0}, true},
		{"too large", PageRequest{Limit: 1001}, true},
		{"negative offset", PageRequest{Limit: 10, Offset: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			var verr *validation.RequestValidationError
			if err != nil && !errors.As(err, &verr) {
				t.Errorf("expected *validation.RequestValidationError, got %T", err)
			}
		})
	}
}

func TestAlbumsRequest_Filter(t *testing.T) {
	page := PageRequest{Limit: 10}

	f, err := (&AlbumsRequest{Code: "KO", PageRequest: page}).filter()
	if err != nil || f.Year != nil || f.Code != "KO" {
		t.Errorf("filter() = %+v, %v; want code KO and no year", f, err)
	}

	f, err = (&AlbumsRequest{Year: "1959", PageRequest: page}).filter()
	if err != nil || f.Year == nil || *f.Year != 1959 {
		t.Errorf("filter() = %+v, %v; want year 1959", f, err)
	}

	_, err = (&AlbumsRequest{Year: "999999999999999999999", PageRequest: page}).filter()
	var bad *badRequestError
	if !errors.As(err, &bad) {
		t.Errorf("expected badRequestError for overflowing year, got %v", err)
	}
}
