package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/rentadmin/internal/client/session"
	"github.com/dmitrijs2005/rentadmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and exchanges them for a bearer token. The
// token is persisted by the auth service, so the session survives restarts.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	a.log.Info(ctx, "logged in", "email", email)
	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami shows who the stored token belongs to and warns when it has
// expired. The token is decoded locally; the backend stays the authority on
// whether it is still accepted.
func (a *App) Whoami(ctx context.Context) error {
	token, err := a.store.Token()
	if err != nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	claims, err := session.Peek(token)
	if err != nil {
		fmt.Fprintln(a.out, "Stored token is not readable:", err)
		return nil
	}

	fmt.Fprintln(a.out, "Logged in as:", claims.Subject)
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintln(a.out, "Token expires:", claims.ExpiresAt.Format(time.RFC3339))
	}
	if claims.Expired(time.Now()) {
		fmt.Fprintln(a.out, "Warning: the session has expired, log in again.")
	}
	return nil
}
