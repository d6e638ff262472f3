package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/models"
	"github.com/dmitrijs2005/rentadmin/internal/client/view"
)

// Blogs opens the article screen. The create response is the complete new
// record, so it is appended locally without a refetch.
func (a *App) Blogs(ctx context.Context) error {
	ctrl, err := view.NewController(view.Config[models.Blog, models.BlogDraft]{
		List:     a.blogs.List,
		Create:   a.blogs.Create,
		Update:   a.blogs.Update,
		Delete:   a.blogs.Delete,
		NewDraft: func() models.BlogDraft { return models.BlogDraft{} },
		DraftOf:  models.DraftOfBlog,
		SearchFields: func(b models.Blog) []string {
			return []string{b.Title, b.Content}
		},
		CreatePolicy: view.AppendCreated,
		PageSize:     a.config.DefaultPageSize,
	})
	if err != nil {
		return err
	}

	s := &screen[models.Blog, models.BlogDraft]{
		name:    "blogs",
		columns: "ID | TITLE | CONTENT",
		ctrl:    ctrl,
		row: func(b models.Blog) string {
			content := b.Content
			if len(content) > 60 {
				content = content[:57] + "..."
			}
			return fmt.Sprintf("%s | %s | %s", b.ID, b.Title, content)
		},
		form: a.blogForm,
	}
	return runScreen(ctx, a, s)
}

func (a *App) blogForm(d *models.BlogDraft, creating bool) error {
	var err error
	if d.Title, err = GetTextWithDefault(a.reader, "Title", d.Title, a.out); err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	if content != "" || creating {
		d.Content = content
	}
	return nil
}
