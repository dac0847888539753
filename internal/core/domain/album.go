package domain

import "time"

// Album groups photos under a title. PhotoIDs keeps insertion order.
type Album struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	PhotoIDs    []string  `json:"photoIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Photo belongs to exactly one album.
type Photo struct {
	ID          string    `json:"id"`
	AlbumID     string    `json:"albumId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
