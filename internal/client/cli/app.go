package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/softwareslayer/internal/client/client"
	"github.com/dmitrijs2005/softwareslayer/internal/client/config"
	"github.com/dmitrijs2005/softwareslayer/internal/client/learnings"
	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/softwareslayer/internal/client/services"
	"github.com/dmitrijs2005/softwareslayer/internal/client/session"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
	"golang.org/x/sync/errgroup"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

// learningsSync is the synchronizer surface the commands drive.
type learningsSync interface {
	Start(ctx context.Context)
	Close()
	Wait()
	State() learnings.View
	Refresh(ctx context.Context)
	SetDraftInput(category, value string)
	SubmitDraft(ctx context.Context, category string)
	DeleteItem(ctx context.Context, id int64)
}

type sessionView interface {
	User() *models.User
	State() session.State
}

type App struct {
	config *config.Config
	log    logging.Logger

	db    *sql.DB
	store *session.Store

	session      sessionView
	authService  services.AuthService
	skillService services.SkillService
	learnings    learningsSync
	reader       *bufio.Reader
	out          io.Writer

	modeMu sync.Mutex
	mode   Mode

	closeOnce sync.Once
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db), logger)
	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, logger)

	a := &App{
		config:       c,
		log:          logger.With("component", "cli"),
		db:           db,
		store:        store,
		session:      store,
		authService:  services.NewAuthService(apiClient, store, logger),
		skillService: services.NewSkillService(apiClient, store, logger),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}
	a.learnings = learnings.NewSynchronizer(apiClient, store, a, a, logger)

	return a, nil
}

// Run loads the persisted session, starts the background watchers and blocks
// in the REPL until the user exits. Resources are released on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.store.Initialize(ctx)
	if err := a.store.WaitReady(ctx); err != nil {
		return err
	}
	ctx = session.NewContext(ctx, a.store)

	a.Root(ctx)
	return nil
}

// Close stops background loads, flushes pending session writes and closes
// the local database. It is safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(a.shutdown)
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.learnings.Close()
	if err := a.store.Close(ctx); err != nil {
		a.log.Warn(ctx, "session flush did not finish", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "failed to close database", "error", err)
	}
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()

	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "switched connection mode", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.User() != nil
}

// StartOnlineStatusWatcher pings the backend every interval and flips the
// mode between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

// home prints the learnings and skills of the signed-in user. Pending
// learnings reloads and the skills request run concurrently.
func (a *App) home(ctx context.Context) {
	var (
		g      errgroup.Group
		skills []string
	)

	g.Go(func() error {
		a.learnings.Wait()
		return nil
	})
	g.Go(func() error {
		s, err := a.skillService.List(ctx)
		skills = s
		return err
	})
	err := g.Wait()

	a.printLearnings(a.learnings.State())
	if err != nil {
		a.log.Error(ctx, "failed to load skills", "error", err)
		a.notifyError(services.UserMessage(err, "Failed to get skills"))
		return
	}
	a.printSkills(skills)
}
