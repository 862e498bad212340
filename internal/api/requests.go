// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Request structs for the catalog listing routes, validated with
// go-playground/validator. Field names in messages come from the query tag.
//
// Example usage:
//
//	req := h.songsRequest(r)
//	if err := validateRequest(&req); err != nil {
//	    return err
//	}

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/database"
)

// PageRequest holds limit and offset. Missing or non-numeric values take the
// defaults before validation, so only out-of-range numbers are rejected.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=1000"`
	Offset int `query:"offset" validate:"min=0"`
}

func (p PageRequest) page() database.Page {
	return database.Page{Limit: p.Limit, Offset: p.Offset}
}

// SongsRequest represents the query parameters for GET /songs.
type SongsRequest struct {
	OriginalName string `query:"original_name"`
	AlbumTitle   string `query:"album_title"`
	AlbumCode    string `query:"album_code"`
	GenreName    string `query:"genre_name"`
	ArtistName   string `query:"artist_name"`
	PageRequest
}

func (s *SongsRequest) filter() database.SongFilter {
	return database.SongFilter{
		OriginalName: s.OriginalName,
		AlbumTitle:   s.AlbumTitle,
		AlbumCode:    s.AlbumCode,
		GenreName:    s.GenreName,
		ArtistName:   s.ArtistName,
		Page:         s.page(),
	}
}

// NameRequest represents the query parameters for GET /artists and GET /genres.
type NameRequest struct {
	Name string `query:"name"`
	PageRequest
}

func (n *NameRequest) filter() database.NameFilter {
	return database.NameFilter{Name: n.Name, Page: n.page()}
}

// AlbumsRequest represents the query parameters for GET /albums.
// Year stays a string until validated so "abc" is reported rather than ignored.
type AlbumsRequest struct {
	Code  string `query:"code"`
	Title string `query:"title"`
	Year  string `query:"year" validate:"omitempty,number"`
	PageRequest
}

// filter converts the validated request. A year too large for int is
// rejected here since the validator only checks the digits.
func (a *AlbumsRequest) filter() (database.AlbumFilter, error) {
	f := database.AlbumFilter{Code: a.Code, Title: a.Title, Page: a.page()}
	if a.Year == "" {
		return f, nil
	}
	year, err := strconv.Atoi(a.Year)
	if err != nil {
		return f, &badRequestError{msg: "year must be a valid integer"}
	}
	f.Year = &year
	return f, nil
}

func pageRequest(r *http.Request, cfg *config.APIConfig) PageRequest {
	return PageRequest{
		Limit:  getIntParam(r, "limit", cfg.DefaultPageSize),
		Offset: getIntParam(r, "offset", 0),
	}
}

func songsRequest(r *http.Request, cfg *config.APIConfig) SongsRequest {
	return SongsRequest{
		OriginalName: getStringParam(r, "original_name"),
		AlbumTitle:   getStringParam(r, "album_title"),
		AlbumCode:    getStringParam(r, "album_code"),
		GenreName:    getStringParam(r, "genre_name"),
		ArtistName:   getStringParam(r, "artist_name"),
		PageRequest:  pageRequest(r, cfg),
	}
}

func nameRequest(r *http.Request, cfg *config.APIConfig) NameRequest {
	return NameRequest{
		Name:        getStringParam(r, "name"),
		PageRequest: pageRequest(r, cfg),
	}
}

func albumsRequest(r *http.Request, cfg *config.APIConfig) AlbumsRequest {
	return AlbumsRequest{
		Code:        getStringParam(r, "code"),
		Title:       getStringParam(r, "title"),
		Year:        getStringParam(r, "year"),
		PageRequest: pageRequest(r, cfg),
	}
}
