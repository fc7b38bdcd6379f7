package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/duskbar/rota/config"
	appconfig "github.com/duskbar/rota/internal/config"
	"github.com/duskbar/rota/internal/metrics"
	"github.com/duskbar/rota/internal/rotalog"
	"github.com/duskbar/rota/internal/storage"
	"github.com/duskbar/rota/planner"
)

// ErrUsage marks a command-line invocation error: wrong argument count or
// an unrecognized flag. Distinguished from configuration/storage failures
// so main can select exit code 2, matching the conventional usage-error
// code a scheduler invoking this CLI can branch on.
var ErrUsage = errors.New("fillshifts: usage error")

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fillshifts <week>",
	Short: "Generate the missing shift assignments for one venue-week",
	Long:  "fillshifts reads a venue's workforce and pre-existing assignments for one week, runs the bar-then-general min-cost flow assignment engine, and persists the resulting manifest.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: expected exactly one argument (week), got %d", ErrUsage, len(args))
		}
		return nil
	},
	RunE: runFillShifts,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "pretty console logging instead of JSON")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func runFillShifts(cmd *cobra.Command, args []string) error {
	week := args[0]
	runID := uuid.NewString()

	logger := rotalog.Setup(verbose).With().Str("run_id", runID).Str("week", week).Logger()

	cfg, err := appconfig.Load()
	if err != nil {
		return fatal("logs", logger, err)
	}

	venue, err := config.LoadVenue(cfg.VenuePath)
	if err != nil {
		return fatal(cfg.LogDir, logger, fmt.Errorf("load venue config: %w", err))
	}

	store, err := storage.Connect(cfg.DatabaseURL)
	if err != nil {
		return fatal(cfg.LogDir, logger, fmt.Errorf("connect to database: %w", err))
	}
	defer store.Close()

	ctx := context.Background()

	workers, err := store.FetchWorkers(ctx)
	if err != nil {
		return fatal(cfg.LogDir, logger, fmt.Errorf("fetch workers: %w", err))
	}

	preExisting, err := store.FetchFilledShifts(ctx, week)
	if err != nil {
		return fatal(cfg.LogDir, logger, fmt.Errorf("fetch filled shifts: %w", err))
	}

	logger.Info().Int("workers", len(workers)).Int("pre_existing", len(preExisting)).Msg("starting run")

	result := planner.RunCoordinator(ctx, venue, workers, preExisting)

	logPoolReport(logger, result.Bar)
	logPoolReport(logger, result.General)

	if err := store.WriteGenerated(ctx, week, result.Manifest.Assignments); err != nil {
		return fatal(cfg.LogDir, logger, fmt.Errorf("write manifest: %w", err))
	}

	m := metrics.New(cfg.PushgatewayURL, "fillshifts")
	m.Observe("bar", result.Bar.Requested, result.Bar.Filled, result.Bar.Gini, result.Bar.SmoothingFactor)
	m.Observe("general", result.General.Requested, result.General.Filled, result.General.Gini, result.General.SmoothingFactor)
	if err := m.Push(); err != nil {
		logger.Warn().Err(err).Msg("metrics push failed")
	}

	logger.Info().Int("generated", len(result.Manifest.Generated())).Msg("run complete")
	return nil
}

// logPoolReport logs a pool's outcome at Warn when it fell short of full
// feasibility or fairness, at Info otherwise — infeasibility is a data
// condition to flag, not an error to escalate (see planner package).
func logPoolReport(logger zerolog.Logger, r planner.Report) {
	event := logger.Info()
	if !r.Feasible || !r.Fair {
		event = logger.Warn()
	}
	event.
		Str("pool", r.Pool).
		Int("requested", r.Requested).
		Int("filled", r.Filled).
		Int("shortfall", r.Shortfall()).
		Bool("feasible", r.Feasible).
		Bool("fair", r.Fair).
		Float64("smoothing_factor", r.SmoothingFactor).
		Float64("gini", r.Gini).
		Msg("pool run complete")
}

func fatal(logDir string, logger zerolog.Logger, err error) error {
	logger.Error().Err(err).Msg("fillshifts failed")
	if f, openErr := rotalog.OpenErrorLog(logDir); openErr == nil {
		fmt.Fprintf(f, "%v\n", err)
		f.Close()
	}
	return err
}
