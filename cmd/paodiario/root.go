package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"paodiario/internal/config"
	"paodiario/internal/logging"
	"paodiario/internal/notebook"
	"paodiario/internal/trace"
	"paodiario/internal/ui"
)

var (
	logFile       string
	verbose       bool
	toastDuration time.Duration
	noAltScreen   bool
)

// rootCmd runs the devotional page when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "paodiario",
	Short: "Pão Diário: daily devotional and personal notebook in the terminal",
	Long: `Pão Diário shows the verse and reflection of the day and keeps a
notebook of personal reflections for the session.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
		cfg := applyFlags(cmd, config.Load())
		return run(cmd.Context(), cfg)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file (overrides "+config.LogFileEnv+")")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().DurationVar(&toastDuration, "toast-duration", config.DefaultToastDuration, "How long notifications stay visible")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of in the alternate screen")
}

// applyFlags overrides cfg with the flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("toast-duration") && toastDuration > 0 {
		cfg.ToastDuration = toastDuration
	}
	if flags.Changed("no-alt-screen") {
		cfg.AltScreen = !noAltScreen
	}
	return cfg
}

func run(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logging.New(cfg.ServiceName, cfg.LogFile, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	tp, err := trace.NewProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		log.Warnw("trace export disabled", zap.Error(err))
		tp = nil
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := trace.Shutdown(shutdownCtx, tp); err != nil {
			log.Warnw("trace shutdown", zap.Error(err))
		}
	}()

	obs := notebook.NewMultiObserver(logging.NewObserver(log), newTraceObserver(tp))
	nb := notebook.New(
		notebook.WithObserver(obs),
		notebook.WithStore(notebook.NewMemoryStore()),
	)

	model := ui.NewAppModel(ui.Options{
		Notebook:      nb,
		ToastDuration: cfg.ToastDuration,
	}).AsTeaModel()

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(ctx))

	log.Infow("starting", "alt_screen", cfg.AltScreen, "trace_export", tp != nil)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	log.Infow("stopped", "notes", nb.Len())
	return nil
}

// newTraceObserver keeps a nil provider from becoming a non-nil interface.
func newTraceObserver(tp *sdktrace.TracerProvider) *trace.Observer {
	if tp == nil {
		return trace.NewObserver(nil)
	}
	return trace.NewObserver(tp)
}
