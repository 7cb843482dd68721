// Package domain defines the catalog entities used by search and playlist export.
package domain

// Artist is a performer in the streaming catalog.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track is a playable song in the streaming catalog.
type Track struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	URI    string `json:"uri"`
}

// SearchResult groups the catalog matches for one query.
type SearchResult struct {
	Artists []Artist `json:"artists"`
	Tracks  []Track  `json:"tracks"`
}

// Playlist is a created streaming-service playlist.
type Playlist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
