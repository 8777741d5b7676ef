package models

import "time"

// BlogPost is a public article from the "blogpost" collection. Posts are
// written by an external process; this service only lists them.
type BlogPost struct {
	ID      string `json:"_id" bson:"_id,omitempty"`
	Title   string `json:"title" bson:"title" validate:"required"`
	Slug    string `json:"slug" bson:"slug" validate:"required"`
	Excerpt string `json:"excerpt" bson:"excerpt" validate:"required"`
	Content string `json:"content" bson:"content" validate:"required"`
	Author  string `json:"author" bson:"author" validate:"required"`

	// Tags keeps its stored order. Never nil after ApplyDefaults.
	Tags []string `json:"tags" bson:"tags"`

	// PublishedAt is nil for drafts.
	PublishedAt *time.Time `json:"published_at" bson:"published_at"`
}

// ApplyDefaults replaces missing tags with an empty list.
func (p *BlogPost) ApplyDefaults() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
