package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/models"
	"github.com/dmitrijs2005/rentadmin/internal/client/view"
)

// Posts opens the listing moderation screen. There is no create or edit
// dialog; pending listings are approved or rejected in place, and rejected
// ones can be removed for good.
func (a *App) Posts(ctx context.Context) error {
	ctrl, err := view.NewController(view.Config[models.Post, struct{}]{
		List:   a.posts.List,
		Delete: a.posts.Delete,
		SearchFields: func(p models.Post) []string {
			return []string{p.Title, p.Landlord.Username, p.Location.City}
		},
		StatusOf: func(p models.Post) string { return p.Status },
		PageSize: a.config.DefaultPageSize,
	})
	if err != nil {
		return err
	}

	// Moderation patches the status locally instead of refetching; the
	// backend returns nothing useful from the status routes.
	setStatus := func(ctx context.Context, id, status string, call func(context.Context, string) error) error {
		if err := call(ctx, id); err != nil {
			return err
		}
		ctrl.Mutate(id, func(p models.Post) models.Post {
			p.Status = status
			return p
		})
		return nil
	}

	s := &screen[models.Post, struct{}]{
		name:     "posts",
		columns:  "ID | TITLE | LANDLORD | CITY | PRICE | STATUS",
		ctrl:     ctrl,
		statuses: []string{models.PostStatusActive, models.PostStatusPending, models.PostStatusDeleted},
		row: func(p models.Post) string {
			return fmt.Sprintf("%s | %s | %s | %s | %.0f | %s",
				p.ID, p.Title, p.Landlord.Username, p.Location.City, p.Price,
				paintStatus(view.ResourcePosts, p.Status))
		},
		extras: map[string]func(ctx context.Context, id string) error{
			"approve": func(ctx context.Context, id string) error {
				return setStatus(ctx, id, models.PostStatusActive, a.posts.Approve)
			},
			"reject": func(ctx context.Context, id string) error {
				return setStatus(ctx, id, models.PostStatusDeleted, a.posts.Reject)
			},
		},
		extraHelp: "approve <id>, reject <id>",
	}
	return runScreen(ctx, a, s)
}
