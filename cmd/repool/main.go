package main

import (
	"fmt"
	"net/http"
	"os"
	"runtime"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorepool/repool/internal/simulate"
	"github.com/gorepool/repool/pkg/config"
	"github.com/gorepool/repool/pkg/logger"
	"github.com/gorepool/repool/pkg/metrics"
	"github.com/gorepool/repool/pkg/pool"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	root := &cobra.Command{
		Use:   "repool",
		Short: "Repool - Ordered object pool with spillover and recycling",
		Long: `Repool is an ordered object pool for reusable resources. It keeps instances
in acquisition order, reuses released ones, spills over past its capacity when
allowed, and recycles the oldest active instance when nothing else is left.`,
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Repool v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newSimulateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// simFlags collects everything the simulate command accepts on the
// command line. A YAML config file, when given, takes precedence for the
// pool shape; the workload knobs always come from flags.
type simFlags struct {
	configFile string
	poolLabel  string

	label     string
	min       int
	max       int
	spillover int

	steps       int
	seed        int64
	acquireBias int
	cleanEvery  int
	writeSize   int

	logLevel      string
	metricsListen string
}

func newSimulateCmd() *cobra.Command {
	flags := &simFlags{}
	defaults := simulate.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a synthetic acquire/release workload against a pool",
		Long: `Run a randomized acquire/release workload against a buffer pool and print
the final telemetry snapshot as JSON.

The pool shape can come from flags or from a YAML config file:

  repool simulate --min 4 --max 16 --spillover 8 --steps 5000
  repool simulate --config pools.yaml --pool scratch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "Path to pool configuration YAML file (optional)")
	cmd.Flags().StringVar(&flags.poolLabel, "pool", "", "Pool label to select from the config file (defaults to the first entry)")

	cmd.Flags().StringVar(&flags.label, "label", "repool-sim", "Label for the simulated pool when no config file is given")
	cmd.Flags().IntVar(&flags.min, "min", 0, "Minimum pool capacity (pre-created instances)")
	cmd.Flags().IntVar(&flags.max, "max", 0, "Maximum pool capacity (0 or below means unbounded)")
	cmd.Flags().IntVar(&flags.spillover, "spillover", 0, "Spillover allowance past max capacity (-1 means unlimited)")

	cmd.Flags().IntVar(&flags.steps, "steps", defaults.Steps, "Number of workload steps to run")
	cmd.Flags().Int64Var(&flags.seed, "seed", defaults.Seed, "Random seed for the workload")
	cmd.Flags().IntVar(&flags.acquireBias, "acquire-bias", defaults.AcquireBias, "Percentage of steps that acquire rather than release (0-100)")
	cmd.Flags().IntVar(&flags.cleanEvery, "clean-every", defaults.CleanEvery, "Run a clean pass every N steps (0 disables)")
	cmd.Flags().IntVar(&flags.writeSize, "write-size", defaults.WriteSize, "Bytes written into each acquired buffer")

	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.metricsListen, "metrics-listen", "", "Serve Prometheus metrics on this address after the run (e.g. :9090)")

	return cmd
}

func runSimulate(flags *simFlags) error {
	if err := logger.Init(logger.Config{Level: flags.logLevel}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := resolvePoolConfig(flags)
	if err != nil {
		return err
	}

	log := logger.Get().With(
		zap.String("component", "repool-cli"),
		zap.String("pool", cfg.Label),
	)

	collector := metrics.NewPoolCollector()

	opts := simulate.Options{
		Steps:       flags.steps,
		Seed:        flags.seed,
		AcquireBias: flags.acquireBias,
		CleanEvery:  flags.cleanEvery,
		WriteSize:   flags.writeSize,
		Observer:    collector.Observe,
	}

	result, err := simulate.Run(log, cfg, opts)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))

	if flags.metricsListen != "" {
		log.Info("serving metrics, interrupt to exit", zap.String("addr", flags.metricsListen))
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(flags.metricsListen, nil); err != nil {
			return fmt.Errorf("metrics server failed: %w", err)
		}
	}

	return nil
}

// resolvePoolConfig builds the pool configuration from the config file
// when one is given, falling back to the shape flags otherwise.
func resolvePoolConfig(flags *simFlags) (pool.Config, error) {
	if flags.configFile == "" {
		cfg := config.PoolConfig{
			Label:              flags.label,
			MinCapacity:        flags.min,
			MaxCapacity:        flags.max,
			SpilloverAllowance: flags.spillover,
		}
		if err := cfg.Validate(); err != nil {
			return pool.Config{}, err
		}
		return cfg.Pool(), nil
	}

	var file config.File
	if err := config.Load(flags.configFile, &file); err != nil {
		return pool.Config{}, fmt.Errorf("failed to load config %s: %w", flags.configFile, err)
	}
	if err := file.Validate(); err != nil {
		return pool.Config{}, err
	}

	if flags.poolLabel == "" {
		return file.Pools[0].Pool(), nil
	}
	for _, pc := range file.Pools {
		if pc.Label == flags.poolLabel {
			return pc.Pool(), nil
		}
	}
	return pool.Config{}, fmt.Errorf("pool %q not found in %s", flags.poolLabel, flags.configFile)
}
