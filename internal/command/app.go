package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"lingualink/internal/bootstrap"
	"lingualink/internal/config"
	"lingualink/internal/model"
	"lingualink/internal/pkg/locale"
	"lingualink/internal/pkg/logger"
	"lingualink/internal/tracer"
	"lingualink/pkg/database"
)

// app carries per-invocation state shared by all subcommands.
type app struct {
	dsn string // --db

	cfg     *config.Config
	log     logger.ILogger
	base    *logger.ZapLogger
	catalog *locale.Catalog

	invocationId   string
	command        string
	started        time.Time
	span           trace.Span
	shutdownTracer func(context.Context) error

	stdin *bufio.Reader
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Load()
	if a.dsn != "" {
		a.cfg.Database.Connection = a.dsn
	}

	a.base = logger.NewZapLogger(a.cfg.Log.FilePath, a.cfg.Log.Level, a.cfg.App.Environment == "production")

	a.invocationId = uuid.NewString()
	a.command = cmd.CommandPath()
	a.started = time.Now()
	a.log = a.base.With(map[string]interface{}{"invocation_id": a.invocationId})

	catalog, err := locale.NewCatalog(a.cfg.App.Locale)
	if err != nil {
		return err
	}
	a.catalog = catalog

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.shutdownTracer = tracer.InitTracer(ctx, a.cfg.Tracing, a.log)

	ctx, a.span = tracer.Tracer("lingualink/command").Start(ctx, a.command)
	a.span.SetAttributes(attribute.String("invocation.id", a.invocationId))
	cmd.SetContext(ctx)

	a.log.Info("Command", "Command started", map[string]interface{}{
		"command": a.command,
	})
	return nil
}

// close records the outcome and flushes logs and traces. It is safe to call
// when setup never ran.
func (a *app) close(ctx context.Context, runErr error) {
	if a.log == nil {
		return
	}

	details := map[string]interface{}{
		"command":     a.command,
		"duration_ms": time.Since(a.started).Milliseconds(),
	}
	if runErr != nil {
		details["error"] = runErr.Error()
		a.log.Error("Command", "Command failed", details)
	} else {
		a.log.Info("Command", "Command finished", details)
	}

	if a.span != nil {
		if runErr != nil {
			a.span.RecordError(runErr)
			a.span.SetStatus(codes.Error, runErr.Error())
		}
		a.span.End()
	}
	if a.shutdownTracer != nil {
		_ = a.shutdownTracer(ctx)
	}
	_ = a.base.Sync()
}

// openStore connects to the configured store and brings the schema up to
// date, as every command that touches the store does.
func (a *app) openStore() (*gorm.DB, error) {
	db, err := database.NewGormDBFromDSN(a.cfg.Database.Connection, database.Options{
		Debug: a.cfg.Log.Level == "debug",
	})
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db, model.All()...); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

func (a *app) runWithStore(cmd *cobra.Command, fn func(ctx context.Context, db *gorm.DB) error) error {
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer database.Close(db)

	return fn(cmd.Context(), db)
}

func (a *app) runWithContainer(cmd *cobra.Command, fn func(ctx context.Context, c *bootstrap.Container) error) error {
	return a.runWithStore(cmd, func(ctx context.Context, db *gorm.DB) error {
		return fn(ctx, bootstrap.NewContainer(ctx, db, a.cfg, a.log))
	})
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
)

func (a *app) t(key string, data map[string]any) string {
	return a.catalog.T(key, data)
}

func (a *app) println(cmd *cobra.Command, key string, data map[string]any) {
	fmt.Fprintln(cmd.OutOrStdout(), a.t(key, data))
}

func (a *app) success(cmd *cobra.Command, key string, data map[string]any) {
	successColor.Fprintln(cmd.OutOrStdout(), a.t(key, data))
}

func (a *app) warn(cmd *cobra.Command, key string, data map[string]any) {
	warningColor.Fprintln(cmd.OutOrStdout(), a.t(key, data))
}

// ---------------------------------------------------------------------------
// Prompts
// ---------------------------------------------------------------------------

func (a *app) reader(cmd *cobra.Command) *bufio.Reader {
	if a.stdin == nil {
		a.stdin = bufio.NewReader(cmd.InOrStdin())
	}
	return a.stdin
}

// promptString asks for a value until a non-blank line is entered.
func (a *app) promptString(cmd *cobra.Command, labelKey string) (string, error) {
	label := a.t(labelKey, nil)
	for {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)

		line, err := a.reader(cmd).ReadString('\n')
		value := strings.TrimSpace(line)
		if value != "" {
			return value, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("no value entered for %q", label)
			}
			return "", err
		}
	}
}

func (a *app) promptUint(cmd *cobra.Command, labelKey string) (uint, error) {
	for {
		raw, err := a.promptString(cmd, labelKey)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseUint(raw, 10, 0)
		if err == nil {
			return uint(value), nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Error: '%s' is not a valid integer.\n", raw)
	}
}

// stringFlag returns the flag value or prompts for it when the flag was not
// given on the command line.
func (a *app) stringFlag(cmd *cobra.Command, name, labelKey string) (string, error) {
	if cmd.Flags().Changed(name) {
		return cmd.Flags().GetString(name)
	}
	return a.promptString(cmd, labelKey)
}

func (a *app) uintFlag(cmd *cobra.Command, name, labelKey string) (uint, error) {
	if cmd.Flags().Changed(name) {
		return cmd.Flags().GetUint(name)
	}
	return a.promptUint(cmd, labelKey)
}
