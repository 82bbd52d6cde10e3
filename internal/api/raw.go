package api

import "encoding/json"

// RawPhoto mirrors a backend photo record. Tags, collections and
// metadata are kept raw as the backend has shipped several shapes for
// them over time (see transform.go)
type RawPhoto struct {
	Id          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Featured    bool            `json:"featured"`
	Visibility  Visibility      `json:"visibility"`
	SortOrder   int             `json:"sortOrder"`
	Metadata    json.RawMessage `json:"metadata"`
	UrlSmall    string          `json:"urlSmall"`
	UrlMedium   string          `json:"urlMedium"`
	UrlLarge    string          `json:"urlLarge"`
	CreatedAt   string          `json:"createdAt"`
	CapturedAt  string          `json:"capturedAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Tags        json.RawMessage `json:"tags"`
	Collections json.RawMessage `json:"collections"`
}

type RawCollection struct {
	Id           string     `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CoverPhotoId string     `json:"coverPhotoId"`
	SortOrder    int        `json:"sortOrder"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
	Photos       []RawPhoto `json:"photos"`
	Count        *RawCount  `json:"_count"`
}

type RawCount struct {
	Photos int `json:"photos"`
}

// Junction record for the relational tag representation
type rawTagLink struct {
	PhotoId string `json:"photoId"`
	Tag     string `json:"tag"`
}

// Junction record for the nested collection representation
type rawCollectionLink struct {
	Id         string           `json:"id"`
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	Collection *json.RawMessage `json:"collection"`
}
