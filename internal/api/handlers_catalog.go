// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListSongs returns songs matching the filters with references expanded.
//
// @Summary List songs
// @Description Substring filters are case-insensitive. album_code matches exactly. Album, genre and artist filters that match nothing return an empty list.
// @Tags Catalog
// @Produce json
// @Param original_name query string false "Substring of the song's original name"
// @Param album_title query string false "Substring of the album title"
// @Param album_code query string false "Exact album code"
// @Param genre_name query string false "Substring of the genre name"
// @Param artist_name query string false "Substring of an artist name"
// @Param limit query int false "Maximum results (1-1000)" default(10)
// @Param offset query int false "Results to skip" default(0)
// @Success 200 {array} models.SongView
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /songs [get]
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) error {
	req := songsRequest(r, &h.config.API)
	if err := validateRequest(&req); err != nil {
		return err
	}

	songs, err := h.catalog.ListSongs(r.Context(), req.filter())
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, songs)
}

// GetSong returns one song with references expanded.
//
// @Summary Get song by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Song ObjectID (24 hex characters or a 12-byte string)"
// @Success 200 {object} models.SongView
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Song not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /song/{id} [get]
func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) error {
	song, err := h.catalog.GetSong(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, song)
}

// ListArtists returns artists whose name contains the name parameter.
//
// @Summary List artists
// @Tags Catalog
// @Produce json
// @Param name query string false "Substring of the artist name"
// @Param limit query int false "Maximum results (1-1000)" default(10)
// @Param offset query int false "Results to skip" default(0)
// @Success 200 {array} models.Artist
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /artists [get]
func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) error {
	req := nameRequest(r, &h.config.API)
	if err := validateRequest(&req); err != nil {
		return err
	}

	artists, err := h.catalog.ListArtists(r.Context(), req.filter())
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, artists)
}

// GetArtist returns one artist document.
//
// @Summary Get artist by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Artist ObjectID (24 hex characters or a 12-byte string)"
// @Success 200 {object} models.Artist
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Artist not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /artist/{id} [get]
func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) error {
	artist, err := h.catalog.GetArtist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, artist)
}

// ListAlbums returns albums matching code, title and year.
//
// @Summary List albums
// @Description code and title are case-insensitive substrings; year is an exact match.
// @Tags Catalog
// @Produce json
// @Param code query string false "Substring of the album code"
// @Param title query string false "Substring of the album title"
// @Param year query int false "Release year"
// @Param limit query int false "Maximum results (1-1000)" default(10)
// @Param offset query int false "Results to skip" default(0)
// @Success 200 {array} models.Album
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /albums [get]
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) error {
	req := albumsRequest(r, &h.config.API)
	if err := validateRequest(&req); err != nil {
		return err
	}
	filter, err := req.filter()
	if err != nil {
		return err
	}

	albums, err := h.catalog.ListAlbums(r.Context(), filter)
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, albums)
}

// GetAlbum returns one album document.
//
// @Summary Get album by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Album ObjectID (24 hex characters or a 12-byte string)"
// @Success 200 {object} models.Album
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Album not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /album/{id} [get]
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) error {
	album, err := h.catalog.GetAlbum(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, album)
}

// ListGenres returns genres whose name contains the name parameter.
//
// @Summary List genres
// @Tags Catalog
// @Produce json
// @Param name query string false "Substring of the genre name"
// @Param limit query int false "Maximum results (1-1000)" default(10)
// @Param offset query int false "Results to skip" default(0)
// @Success 200 {array} models.Genre
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /genres [get]
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) error {
	req := nameRequest(r, &h.config.API)
	if err := validateRequest(&req); err != nil {
		return err
	}

	genres, err := h.catalog.ListGenres(r.Context(), req.filter())
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, genres)
}

// GetGenre returns one genre document.
//
// @Summary Get genre by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Genre ObjectID (24 hex characters or a 12-byte string)"
// @Success 200 {object} models.Genre
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Genre not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /genre/{id} [get]
func (h *Handler) GetGenre(w http.ResponseWriter, r *http.Request) error {
	genre, err := h.catalog.GetGenre(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return respondJSON(w, r, http.StatusOK, genre)
}
