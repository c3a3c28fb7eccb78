package team

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

var (
	// ErrSlugTaken is returned by repositories when a write collides with
	// an existing slug.
	ErrSlugTaken = errors.New("team slug already exists")
	// ErrInUse is returned when a team cannot be deleted because games
	// still reference it.
	ErrInUse = errors.New("team is referenced by games")
)

// Team is a club that plays games.
type Team struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch carries the fields of a partial update; nil means untouched.
type Patch struct {
	Name        *string
	Slug        *string
	Description *string
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Slug == nil && p.Description == nil
}

// Slugify derives the URL identifier of a team name. Names are stored
// HTML-escaped, so entities are decoded first and "A &amp; B" and "A & B"
// map to the same slug.
func Slugify(name string) string {
	return slug.Make(html.UnescapeString(strings.TrimSpace(name)))
}
