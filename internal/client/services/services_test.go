package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/models"
	"github.com/dmitrijs2005/rentadmin/internal/client/session"
	"github.com/dmitrijs2005/rentadmin/internal/logging"
)

func newAPI(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return api.New(srv.URL, session.StaticSource("tok"), log)
}

func TestAuthService_LoginSavesToken(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	}))
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "admin.token"))
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := NewAuthService(api.New(srv.URL, store, log), store)

	require.NoError(t, svc.Login(context.Background(), "admin@example.com", "secret"))
	require.Equal(t, "admin@example.com", gotBody["email"])
	require.Equal(t, "secret", gotBody["password"])

	tok, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "issued-token", tok)

	require.NoError(t, svc.Logout())
	require.False(t, store.LoggedIn())
}

func TestUsersService_ListHitsAuthUsers(t *testing.T) {
	svc := NewUsersService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/auth/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.User{{ID: "u1", Username: "ann"}})
	}))

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "ann", users[0].Username)
}

func TestUsersService_CreateSendsMultipartWithPassword(t *testing.T) {
	avatar := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(avatar, []byte("\x89PNG\r\n\x1a\n0000"), 0o644))

	svc := NewUsersService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/admin/create-user", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		require.Equal(t, "bob", r.FormValue("username"))
		require.Equal(t, "bob@example.com", r.FormValue("email"))
		require.Equal(t, "pw", r.FormValue("password"))
		require.Equal(t, models.RoleUser, r.FormValue("user_role"))
		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "avatar.png", header.Filename)
		_ = json.NewEncoder(w).Encode(models.User{ID: "u2", Username: "bob"})
	}))

	draft := models.NewUserDraft()
	draft.Username = "bob"
	draft.Email = "bob@example.com"
	draft.Password = "pw"
	draft.AvatarPath = avatar

	created, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)
	require.Equal(t, "u2", created.ID)
}

func TestUsersService_UpdateOmitsPassword(t *testing.T) {
	svc := NewUsersService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/auth/users/u1", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		require.Empty(t, r.FormValue("password"))
		require.Equal(t, "ann2", r.FormValue("username"))
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "ann2"})
	}))

	draft := models.UserDraft{Username: "ann2", Password: "should-not-leak", Role: models.RoleUser}
	updated, err := svc.Update(context.Background(), "u1", draft)
	require.NoError(t, err)
	require.Equal(t, "ann2", updated.Username)
}

func TestUsersService_DeleteUsesSingularRoute(t *testing.T) {
	var gotPath string
	svc := NewUsersService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, svc.Delete(context.Background(), "u1"))
	require.Equal(t, "/auth/user/u1", gotPath)
}

func TestPostsService_ModerationRoutes(t *testing.T) {
	type call struct {
		method, path, status string
	}
	var calls []call
	svc := NewPostsService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, call{method: r.Method, path: r.URL.Path, status: body["status"]})
		w.WriteHeader(http.StatusNoContent)
	}))

	ctx := context.Background()
	require.NoError(t, svc.Approve(ctx, "p1"))
	require.NoError(t, svc.Reject(ctx, "p1"))
	require.NoError(t, svc.Delete(ctx, "p1"))

	require.Equal(t, []call{
		{method: http.MethodPut, path: "/post/p1/activate", status: models.PostStatusActive},
		{method: http.MethodPut, path: "/post/p1/delete", status: models.PostStatusDeleted},
		{method: http.MethodDelete, path: "/post/p1", status: ""},
	}, calls)
}

func TestReportsService_SetStatusLowercasesSegment(t *testing.T) {
	var gotPath string
	svc := NewReportsService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, svc.SetStatus(context.Background(), "r1", models.ReportStatusProcessing))
	require.Equal(t, "/report/r1/status/processing", gotPath)

	require.NoError(t, svc.SetStatus(context.Background(), "r1", models.ReportStatusResolved))
	require.Equal(t, "/report/r1/status/resolved", gotPath)
}

func TestNotificationsService_CreateSendsReceiverID(t *testing.T) {
	var gotBody map[string]string
	svc := NewNotificationsService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/notification/create", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(models.Notification{ID: "n1", Message: "hi"})
	}))

	draft := models.NotificationDraft{ReceiverID: "u1", Message: "hi"}
	created, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)
	require.Equal(t, "n1", created.ID)
	require.Equal(t, "u1", gotBody["id_user"])
	require.Equal(t, "hi", gotBody["message"])
}

func TestNotificationsService_UpdateAndDeleteRoutes(t *testing.T) {
	var gotMethod, gotPath string
	svc := NewNotificationsService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(models.Notification{ID: "n1"})
	}))

	_, err := svc.Update(context.Background(), "n1", models.NotificationDraft{Message: "edited"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/notification/n1", gotPath)

	require.NoError(t, svc.Delete(context.Background(), "n1"))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/notification/n1", gotPath)
}

func TestBlogsService_CRUDRoutes(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	svc := NewBlogsService(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(models.Blog{ID: "b1", Title: "t"})
	}))

	ctx := context.Background()

	created, err := svc.Create(ctx, models.BlogDraft{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.Equal(t, "b1", created.ID)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/blog", gotPath)
	require.Equal(t, "c", gotBody["content"])

	_, err = svc.Update(ctx, "b1", models.BlogDraft{Title: "t2"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/blog/b1", gotPath)

	require.NoError(t, svc.Delete(ctx, "b1"))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/blog/b1", gotPath)
}
