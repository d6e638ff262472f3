package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/models"
	"github.com/dmitrijs2005/rentadmin/internal/client/view"
)

// Reports opens the abuse report screen. Reports cannot be created, edited
// or deleted here; they only move forward through the workflow with
// "process" and "resolve".
func (a *App) Reports(ctx context.Context) error {
	ctrl, err := view.NewController(view.Config[models.Report, struct{}]{
		List: a.reports.List,
		SearchFields: func(r models.Report) []string {
			return []string{r.Reason, r.Reporter.Username, r.Post.Title}
		},
		StatusOf: func(r models.Report) string { return r.Status },
		PageSize: a.config.DefaultPageSize,
	})
	if err != nil {
		return err
	}

	setStatus := func(ctx context.Context, id, status string) error {
		if err := a.reports.SetStatus(ctx, id, status); err != nil {
			return err
		}
		ctrl.Mutate(id, func(r models.Report) models.Report {
			r.Status = status
			return r
		})
		return nil
	}

	s := &screen[models.Report, struct{}]{
		name:     "reports",
		columns:  "ID | REPORTER | POST | REASON | STATUS",
		ctrl:     ctrl,
		statuses: []string{models.ReportStatusPending, models.ReportStatusProcessing, models.ReportStatusResolved},
		row: func(r models.Report) string {
			return fmt.Sprintf("%s | %s | %s | %s | %s",
				r.ID, r.Reporter.Username, r.Post.Title, r.Reason,
				paintStatus(view.ResourceReports, r.Status))
		},
		extras: map[string]func(ctx context.Context, id string) error{
			"process": func(ctx context.Context, id string) error {
				return setStatus(ctx, id, models.ReportStatusProcessing)
			},
			"resolve": func(ctx context.Context, id string) error {
				return setStatus(ctx, id, models.ReportStatusResolved)
			},
		},
		extraHelp: "process <id>, resolve <id>",
	}
	return runScreen(ctx, a, s)
}
