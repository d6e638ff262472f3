package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/config"
	"github.com/dmitrijs2005/rentadmin/internal/client/services"
	"github.com/dmitrijs2005/rentadmin/internal/client/session"
	"github.com/dmitrijs2005/rentadmin/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  *session.Store

	auth          services.AuthService
	users         services.UsersService
	posts         services.PostsService
	reports       services.ReportsService
	notifications services.NotificationsService
	blogs         services.BlogsService

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	log, err := newLogger(c.LogBackend)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(c.TokenFile)
	if err := store.Load(); err != nil {
		return nil, err
	}

	apiClient := api.New(c.APIBaseURL, store, log)

	return &App{
		config:        c,
		log:           log,
		store:         store,
		auth:          services.NewAuthService(apiClient, store),
		users:         services.NewUsersService(apiClient),
		posts:         services.NewPostsService(apiClient),
		reports:       services.NewReportsService(apiClient),
		notifications: services.NewNotificationsService(apiClient),
		blogs:         services.NewBlogsService(apiClient),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// newLogger builds the structured logger the whole client shares. Logs go to
// stderr so they never interleave with REPL output on stdout.
func newLogger(backend string) (logging.Logger, error) {
	if backend == "slog" {
		return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))), nil
	}
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logging.NewZapLogger(zl), nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.LoggedIn()
}
