// Package models defines the wire types exchanged with the Ponto de Aula
// REST backend.
package models

import "strings"

// Post is a feed entry with rich text content and optional media.
type Post struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	AuthorID  string   `json:"authorId"`
	Tags      []string `json:"tags,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	VideoURL  string   `json:"videoUrl,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// OwnerID implements rbac.Ownable so ownership rules can inspect posts.
func (p Post) OwnerID() string {
	return p.AuthorID
}

// CreatePostPayload is the body of POST /posts.
type CreatePostPayload struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	VideoURL string   `json:"videoUrl,omitempty"`
}

// UpdatePostPayload is the body of PUT /posts/{id}. Empty fields are omitted
// and left untouched by the backend.
type UpdatePostPayload struct {
	Title    string   `json:"title,omitempty"`
	Content  string   `json:"content,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	VideoURL string   `json:"videoUrl,omitempty"`
}

// PostSearchParams are the query parameters of GET /posts/search.
type PostSearchParams struct {
	Search     string
	Title      string
	Tag        string
	AuthorID   string
	AuthorName string
	Page       int
	Limit      int
	SortBy     string // createdAt or title
	SortOrder  string // asc or desc
}

// AuthorSummary is a feed author as returned by GET /posts/authors.
type AuthorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SplitTags turns a comma separated form input into a tag list.
func SplitTags(input string) []string {
	var tags []string

	for _, t := range strings.Split(input, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}
