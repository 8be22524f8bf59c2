package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/filterdash/internal/config"
	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/health"
	"codeberg.org/mutker/filterdash/internal/logger"
	"codeberg.org/mutker/filterdash/internal/series"
	"codeberg.org/mutker/filterdash/internal/ui"
	"github.com/spf13/pflag"
)

const logFilePerm = 0o644

func main() {
	ctx, stop := withSignals(context.Background())
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "filterdash: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	errFactory := errors.New()

	loader, err := config.NewLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.Load(args)
	if err != nil {
		return err
	}

	interactive := !cfg.Once && !logger.IsService()
	closeLog, err := initLogger(cfg, interactive)
	if err != nil {
		return err
	}
	defer func() {
		logFailure(err)
		closeLog()
	}()
	logger.Debug().Str("file", loader.ConfigFile()).Msg("Config loaded")

	model, err := health.NewModel(cfg.HealthThresholds())
	if err != nil {
		return err
	}
	builder, err := series.NewBuilder(cfg.SeriesOptions()...)
	if err != nil {
		return err
	}
	theme, err := ui.NewTheme(cfg.Theme)
	if err != nil {
		return err
	}

	live := config.NewLive(cfg)
	refresher := ui.Refresher{Source: live, Evaluator: model, Builder: builder}

	if !interactive {
		frame := refresher.Refresh(cfg.SelectedRange())
		if _, err := fmt.Fprintln(stdout, ui.Render(frame, theme, 0)); err != nil {
			return errFactory.Wrap(errors.ErrInternal, err)
		}
		if frame.Err != nil {
			return frame.Err
		}
		return nil
	}

	if err := loader.Watch(ctx, func(next *config.Config) {
		live.Store(next)
	}); err != nil {
		logger.Warn().Err(err).Msg("Configuration reload disabled")
	}

	logger.Info().
		Dur("interval", cfg.RefreshInterval()).
		Str("range", cfg.SelectedRange().String()).
		Str("theme", theme.Name).
		Msg("Starting dashboard")

	err = ui.Run(ctx, ui.NewModel(refresher, theme, cfg.RefreshInterval(), cfg.SelectedRange()))
	if ctx.Err() != nil {
		logger.Info().Msg("Received termination signal.")
	}
	return err
}

// logFailure records why run stopped while the log output is still open.
func logFailure(err error) {
	if err == nil {
		return
	}
	var appErr errors.Error
	if errors.As(err, &appErr) {
		logger.ErrorWithCode(appErr).Msg("filterdash stopped")
		return
	}
	logger.Error().Err(err).Msg("filterdash stopped")
}

// initLogger sends logs to stderr for one-shot output and to the log file
// (or nowhere) while the full-screen dashboard owns the terminal.
func initLogger(cfg *config.Config, interactive bool) (func(), error) {
	errFactory := errors.New()
	opts := logger.Options{
		Debug:   cfg.Debug,
		Verbose: cfg.Verbose,
		Service: logger.IsService(),
		Output:  os.Stderr,
	}
	closeFn := func() {}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
		if err != nil {
			return nil, errFactory.Wrap(errors.ErrOpenLogFile, err)
		}
		opts.Output = f
		opts.NoColor = true
		closeFn = func() { _ = f.Close() }
	case interactive:
		opts.Output = io.Discard
	}

	logger.Init(opts)
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			closeFn()
			return nil, err
		}
		logger.SetLogLevel(level)
	}

	return closeFn, nil
}

// withSignals returns a context that is cancelled on SIGINT or SIGTERM.
func withSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
