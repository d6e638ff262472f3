package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/models"
	"github.com/dmitrijs2005/rentadmin/internal/netx"
)

// UsersService manages platform accounts. Create and update are multipart
// requests because a draft may carry an avatar file.
type UsersService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, draft models.UserDraft) (models.User, error)
	Update(ctx context.Context, id string, draft models.UserDraft) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type usersService struct {
	api *api.Client
}

func NewUsersService(api *api.Client) UsersService {
	return &usersService{api: api}
}

func (s *usersService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.api.Get(ctx, "/auth/users", &users); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return users, nil
}

func userForm(draft models.UserDraft, withPassword bool) *netx.Form {
	f := netx.NewForm().
		Field("username", draft.Username).
		Field("email", draft.Email).
		Field("phone", draft.Phone).
		Field("address", draft.Address).
		Field("user_role", draft.Role)
	if withPassword && draft.Password != "" {
		f.Field("password", draft.Password)
	}
	if draft.AvatarPath != "" {
		f.File("avatar", draft.AvatarPath)
	}
	return f
}

func (s *usersService) Create(ctx context.Context, draft models.UserDraft) (models.User, error) {
	body, contentType, err := userForm(draft, true).Close()
	if err != nil {
		return models.User{}, fmt.Errorf("building user form: %w", err)
	}

	var created models.User
	if err := s.api.PostForm(ctx, "/auth/admin/create-user", body, contentType, &created); err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}
	return created, nil
}

func (s *usersService) Update(ctx context.Context, id string, draft models.UserDraft) (models.User, error) {
	body, contentType, err := userForm(draft, false).Close()
	if err != nil {
		return models.User{}, fmt.Errorf("building user form: %w", err)
	}

	var updated models.User
	if err := s.api.PutForm(ctx, "/auth/users/"+id, body, contentType, &updated); err != nil {
		return models.User{}, fmt.Errorf("updating user %s: %w", id, err)
	}
	return updated, nil
}

func (s *usersService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/auth/user/"+id); err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	return nil
}
