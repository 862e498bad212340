// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"fmt"
	"strings"
)

// mongoURI holds the parts of a MongoDB connection string that configuration
// cares about. Connection strings allow comma-separated host lists, which
// net/url does not accept, so they are split by hand.
type mongoURI struct {
	scheme   string
	userinfo string
	hosts    []string
	database string
	query    string
}

func parseMongoURI(raw string) (*mongoURI, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return nil, fmt.Errorf("missing scheme separator")
	}
	u := &mongoURI{scheme: scheme}

	rest, u.query, _ = strings.Cut(rest, "?")
	authority, path, _ := strings.Cut(rest, "/")
	u.database = strings.Trim(path, "/")

	if at := strings.LastIndex(authority, "@"); at >= 0 {
		u.userinfo = authority[:at]
		authority = authority[at+1:]
	}
	for _, h := range strings.Split(authority, ",") {
		if h = strings.TrimSpace(h); h != "" {
			u.hosts = append(u.hosts, h)
		}
	}
	return u, nil
}

// validateMongoURI checks that rawURL is a MongoDB connection string.
// Supports: mongodb:// with one or more hosts and mongodb+srv:// with a single host.
func validateMongoURI(rawURL, fieldName string) error {
	u, err := parseMongoURI(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URI: %w", fieldName, err)
	}

	switch u.scheme {
	case "mongodb":
	case "mongodb+srv":
		if len(u.hosts) > 1 {
			return fmt.Errorf("%s mongodb+srv allows a single host", fieldName)
		}
	default:
		return fmt.Errorf("%s scheme must be mongodb or mongodb+srv, got: %s", fieldName, u.scheme)
	}

	if len(u.hosts) == 0 {
		return fmt.Errorf("%s host is required", fieldName)
	}

	return nil
}

// DatabaseName returns the database to query: the configured name, else the
// database in the URI path, else "test".
func (d *DatabaseConfig) DatabaseName() string {
	if d.Name != "" {
		return d.Name
	}
	if u, err := parseMongoURI(d.URI); err == nil && u.database != "" {
		return u.database
	}
	return "test"
}

// RedactedURI returns the connection string with any password masked, for logging.
func (d *DatabaseConfig) RedactedURI() string {
	u, err := parseMongoURI(d.URI)
	if err != nil {
		return "<unparseable>"
	}
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteString("://")
	if u.userinfo != "" {
		user, _, hasPassword := strings.Cut(u.userinfo, ":")
		b.WriteString(user)
		if hasPassword {
			b.WriteString(":xxxxx")
		}
		b.WriteString("@")
	}
	b.WriteString(strings.Join(u.hosts, ","))
	if u.database != "" {
		b.WriteString("/")
		b.WriteString(u.database)
	}
	if u.query != "" {
		b.WriteString("?")
		b.WriteString(u.query)
	}
	return b.String()
}
