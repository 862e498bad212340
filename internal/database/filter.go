// Cadence - Music Catalog Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package database

// Page selects a window of results in natural store order.
type Page struct {
	Limit  int
	Offset int
}

// SongFilter holds the /songs criteria. Empty strings mean "no criterion".
type SongFilter struct {
	OriginalName string // substring of the song's original_name
	AlbumTitle   string // substring of the album title
	AlbumCode    string // exact album code
	GenreName    string // substring of the genre name
	ArtistName   string // substring of any artist name
	Page
}

// hasAlbumCriteria reports whether the albums collection must be consulted.
func (f SongFilter) hasAlbumCriteria() bool {
	return f.AlbumTitle != "" || f.AlbumCode != ""
}

// NameFilter holds the /artists and /genres criteria.
type NameFilter struct {
	Name string // substring of name
	Page
}

// AlbumFilter holds the /albums criteria. Code is a substring match here,
// unlike SongFilter.AlbumCode.
type AlbumFilter struct {
	Code  string
	Title string
	Year  *int
	Page
}
