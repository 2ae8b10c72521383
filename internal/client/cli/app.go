package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/itnewcomer/Memento/internal/calendarx"
	"github.com/itnewcomer/Memento/internal/client/config"
	"github.com/itnewcomer/Memento/internal/client/render"
	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/repositories/repomanager"
	"github.com/itnewcomer/Memento/internal/services"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	journal  *services.JournalService
	goals    *services.GoalService
	settings *services.SettingsService
	backup   *services.BackupService
	store    *services.BackupStore
	logger   logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	// goalMonth is the month goal subcommands edit; zero means this month.
	goalMonth calendarx.Day
}

// NewApp opens the store named by c.DatabaseDSN and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, "text")

	db, rm, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	store := services.NewBackupStore(services.S3Settings{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		RetryTimeout: c.BackupRetryTimeout,
	}, logger)

	return newApp(c, db, rm, store, logger, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, rm repomanager.RepositoryManager, store *services.BackupStore, l logging.Logger, r *bufio.Reader, w io.Writer) *App {
	j := services.NewJournalService(db, rm, l)
	g := services.NewGoalService(db, rm, l)
	st := services.NewSettingsService(db, rm, l)
	return &App{
		config:   c,
		db:       db,
		journal:  j,
		goals:    g,
		settings: st,
		backup:   services.NewBackupService(db, rm, j, g, st, l),
		store:    store,
		logger:   l,
		reader:   r,
		out:      w,
		now:      time.Now,
	}
}

// Run blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, render.Title.Render("Memento")+" (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) today() calendarx.Day {
	return calendarx.DayOf(a.now())
}

// getStatus shows today's rating, or a hint when today is not recorded.
func (a *App) getStatus(ctx context.Context) string {
	rec, err := a.journal.Get(ctx, a.today())
	if err != nil {
		return "(today: not recorded)"
	}
	return fmt.Sprintf("(today: %s)", render.RatingEmoji(rec.Rating))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
