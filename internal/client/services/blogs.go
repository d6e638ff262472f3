package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/models"
)

// BlogsService manages editorial articles.
type BlogsService interface {
	List(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, draft models.BlogDraft) (models.Blog, error)
	Update(ctx context.Context, id string, draft models.BlogDraft) (models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type blogsService struct {
	api *api.Client
}

func NewBlogsService(api *api.Client) BlogsService {
	return &blogsService{api: api}
}

func (s *blogsService) List(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := s.api.Get(ctx, "/blog", &blogs); err != nil {
		return nil, fmt.Errorf("fetching blogs: %w", err)
	}
	return blogs, nil
}

type blogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *blogsService) Create(ctx context.Context, draft models.BlogDraft) (models.Blog, error) {
	req := blogRequest{Title: draft.Title, Content: draft.Content}
	var created models.Blog
	if err := s.api.PostJSON(ctx, "/blog", req, &created); err != nil {
		return models.Blog{}, fmt.Errorf("creating blog: %w", err)
	}
	return created, nil
}

func (s *blogsService) Update(ctx context.Context, id string, draft models.BlogDraft) (models.Blog, error) {
	req := blogRequest{Title: draft.Title, Content: draft.Content}
	var updated models.Blog
	if err := s.api.PutJSON(ctx, "/blog/"+id, req, &updated); err != nil {
		return models.Blog{}, fmt.Errorf("updating blog %s: %w", id, err)
	}
	return updated, nil
}

func (s *blogsService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/blog/"+id); err != nil {
		return fmt.Errorf("deleting blog %s: %w", id, err)
	}
	return nil
}
