package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/models"
)

// PostsService moderates listings. There is no create or edit dialog for
// posts; the admin approves pending listings, soft-rejects them, or removes
// rejected ones permanently.
type PostsService interface {
	List(ctx context.Context) ([]models.Post, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type postsService struct {
	api *api.Client
}

func NewPostsService(api *api.Client) PostsService {
	return &postsService{api: api}
}

func (s *postsService) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.api.Get(ctx, "/post/getAll", &posts); err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	return posts, nil
}

type postStatusRequest struct {
	Status string `json:"status"`
}

// Approve activates a listing. The response body is ignored; the caller
// patches the status into its collection in place.
func (s *postsService) Approve(ctx context.Context, id string) error {
	req := postStatusRequest{Status: models.PostStatusActive}
	if err := s.api.PutJSON(ctx, "/post/"+id+"/activate", req, nil); err != nil {
		return fmt.Errorf("approving post %s: %w", id, err)
	}
	return nil
}

// Reject soft-deletes a listing, keeping it recoverable.
func (s *postsService) Reject(ctx context.Context, id string) error {
	req := postStatusRequest{Status: models.PostStatusDeleted}
	if err := s.api.PutJSON(ctx, "/post/"+id+"/delete", req, nil); err != nil {
		return fmt.Errorf("rejecting post %s: %w", id, err)
	}
	return nil
}

// Delete removes a listing permanently.
func (s *postsService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/post/"+id); err != nil {
		return fmt.Errorf("deleting post %s: %w", id, err)
	}
	return nil
}
