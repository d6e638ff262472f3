package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/models"
	"github.com/dmitrijs2005/rentadmin/internal/client/view"
	"github.com/dmitrijs2005/rentadmin/internal/common"
)

// Users opens the account management screen. Creation refetches the whole
// collection because the backend fills in server-side fields (id, avatar
// URL, creation time) the client cannot reconstruct.
func (a *App) Users(ctx context.Context) error {
	ctrl, err := view.NewController(view.Config[models.User, models.UserDraft]{
		List:     a.users.List,
		Create:   a.users.Create,
		Update:   a.users.Update,
		Delete:   a.users.Delete,
		NewDraft: models.NewUserDraft,
		DraftOf:  models.DraftOfUser,
		SearchFields: func(u models.User) []string {
			return []string{u.Username, u.Email}
		},
		StatusOf:     models.User.Status,
		CreatePolicy: view.RefetchAfterCreate,
		PageSize:     a.config.DefaultPageSize,
	})
	if err != nil {
		return err
	}

	s := &screen[models.User, models.UserDraft]{
		name:     "users",
		columns:  "ID | USERNAME | EMAIL | ROLE | STATUS",
		ctrl:     ctrl,
		statuses: []string{models.UserStatusActive, models.UserStatusBlocked},
		row: func(u models.User) string {
			return fmt.Sprintf("%s | %s | %s | %s | %s",
				u.ID, u.Username, u.Email, u.Role,
				paintStatus(view.ResourceUsers, u.Status()))
		},
		form: a.userForm,
	}
	return runScreen(ctx, a, s)
}

// userForm fills an account draft. Every prompt shows the current value so
// editing means pressing Enter through unchanged fields. The password is
// asked only when creating; on edit the backend keeps the existing one.
func (a *App) userForm(d *models.UserDraft, creating bool) error {
	var err error
	if d.Username, err = GetTextWithDefault(a.reader, "Username", d.Username, a.out); err != nil {
		return err
	}
	if d.Email, err = GetTextWithDefault(a.reader, "Email", d.Email, a.out); err != nil {
		return err
	}
	if creating {
		password, err := getPassword(a.out)
		if err != nil {
			return err
		}
		d.Password = string(password)
		common.WipeByteArray(password)
	}
	if d.Phone, err = GetTextWithDefault(a.reader, "Phone", d.Phone, a.out); err != nil {
		return err
	}
	if d.Address, err = GetTextWithDefault(a.reader, "Address", d.Address, a.out); err != nil {
		return err
	}
	if d.Role, err = GetTextWithDefault(a.reader, "Role (User/Admin)", d.Role, a.out); err != nil {
		return err
	}
	if d.AvatarPath, err = GetTextWithDefault(a.reader, "Avatar file (empty to skip)", d.AvatarPath, a.out); err != nil {
		return err
	}
	return nil
}
