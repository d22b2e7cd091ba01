package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ponto-de-aula/ponto-de-aula/internal/api"
	"github.com/ponto-de-aula/ponto-de-aula/internal/models"
)

const postsBasePath = "/posts"

// Posts wraps the feed endpoints of the backend.
type Posts struct {
	client *api.Client
}

// NewPosts creates the posts service on top of client.
func NewPosts(client *api.Client) *Posts {
	return &Posts{client: client}
}

// Search lists posts with filters and pagination.
func (s *Posts) Search(ctx context.Context, params models.PostSearchParams) (*models.PaginatedResponse[[]models.Post], error) {
	query := url.Values{}

	setIfPresent := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}

	setIfPresent("search", params.Search)
	setIfPresent("title", params.Title)
	setIfPresent("tag", params.Tag)
	setIfPresent("authorId", params.AuthorID)
	setIfPresent("authorName", params.AuthorName)
	setIfPresent("sortBy", params.SortBy)
	setIfPresent("sortOrder", params.SortOrder)

	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}

	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var res models.PaginatedResponse[[]models.Post]

	if err := s.client.Get(ctx, postsBasePath+"/search", query, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

// Mine lists the posts authored by the current user.
func (s *Posts) Mine(ctx context.Context) (*models.PaginatedResponse[[]models.Post], error) {
	var res models.PaginatedResponse[[]models.Post]

	if err := s.client.Get(ctx, postsBasePath+"/mine", nil, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

// Get fetches a single post.
func (s *Posts) Get(ctx context.Context, id string) (*models.Post, error) {
	var res models.APIResponse[models.Post]

	if err := s.client.Get(ctx, postsBasePath+"/"+id, nil, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// Create publishes a new post.
func (s *Posts) Create(ctx context.Context, payload models.CreatePostPayload) (*models.Post, error) {
	var res models.APIResponse[models.Post]

	if err := s.client.Post(ctx, postsBasePath, payload, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// Update modifies an existing post.
func (s *Posts) Update(ctx context.Context, id string, payload models.UpdatePostPayload) (*models.Post, error) {
	var res models.APIResponse[models.Post]

	if err := s.client.Put(ctx, postsBasePath+"/"+id, payload, &res); err != nil {
		return nil, err
	}

	return &res.Data, nil
}

// Delete removes a post.
func (s *Posts) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, postsBasePath+"/"+id, nil)
}

// Authors lists the feed's post authors, used by the author filter.
func (s *Posts) Authors(ctx context.Context) ([]models.AuthorSummary, error) {
	var res models.APIResponse[[]models.AuthorSummary]

	if err := s.client.Get(ctx, postsBasePath+"/authors", nil, &res); err != nil {
		return nil, err
	}

	return res.Data, nil
}
