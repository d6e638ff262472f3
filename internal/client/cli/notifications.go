package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/models"
	"github.com/dmitrijs2005/rentadmin/internal/client/view"
)

// Notifications opens the notification screen. Creation refetches the
// collection: the list response carries the receiver's username, which only
// the backend can resolve from the id the form collects.
func (a *App) Notifications(ctx context.Context) error {
	ctrl, err := view.NewController(view.Config[models.Notification, models.NotificationDraft]{
		List:     a.notifications.List,
		Create:   a.notifications.Create,
		Update:   a.notifications.Update,
		Delete:   a.notifications.Delete,
		NewDraft: func() models.NotificationDraft { return models.NotificationDraft{} },
		DraftOf:  models.DraftOfNotification,
		SearchFields: func(n models.Notification) []string {
			return []string{n.Message, n.Receiver.Username}
		},
		CreatePolicy: view.RefetchAfterCreate,
		PageSize:     a.config.DefaultPageSize,
	})
	if err != nil {
		return err
	}

	s := &screen[models.Notification, models.NotificationDraft]{
		name:    "notifications",
		columns: "ID | RECEIVER | MESSAGE | SENT",
		ctrl:    ctrl,
		row: func(n models.Notification) string {
			return fmt.Sprintf("%s | %s | %s | %s",
				n.ID, n.Receiver.Username, n.Message, n.CreatedAt.Format("2006-01-02 15:04"))
		},
		form: a.notificationForm,
	}
	return runScreen(ctx, a, s)
}

func (a *App) notificationForm(d *models.NotificationDraft, creating bool) error {
	var err error
	if d.ReceiverID, err = GetTextWithDefault(a.reader, "Receiver user id", d.ReceiverID, a.out); err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	if message != "" || creating {
		d.Message = message
	}
	return nil
}
