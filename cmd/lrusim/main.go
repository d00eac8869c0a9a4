// Command lrusim replays a cache operation script against an LRU cache and
// prints the lookup results and a summary.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.expect.digital/recency/internal/config"
	"go.expect.digital/recency/internal/logging"
	"go.expect.digital/recency/internal/sim"
	"go.expect.digital/recency/lru"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "lrusim [script]",
		Short: "Replay put/get operations against a bounded LRU cache",
		Long: `lrusim reads a script with one operation per line and replays it
against an LRU cache of the configured capacity.

  put <key> <value>
  get <key>
  peek <key>
  del <key>

The script is read from stdin when no file is given. Settings can also be
provided with LRUSIM_CAPACITY, LRUSIM_LOG_LEVEL and LRUSIM_LOG_FORMAT.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().Int("capacity", defaults.Capacity, "maximum number of cache entries")
	cmd.Flags().String("log-level", defaults.Log.Level, "log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-format", defaults.Log.Format, "log format: console or json")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	var in io.Reader = cmd.InOrStdin()

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()

		in = f
	}

	ops, err := sim.Parse(in)
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}

	log.Debug().Int("capacity", cfg.Capacity).Int("ops", len(ops)).Msg("replaying script")

	c := lru.New(cfg.Capacity,
		lru.WithLogger[string, string](log),
		lru.WithOnEvict(func(key, _ string) {
			log.Info().Str("key", key).Msg("evicted")
		}),
	)

	out := cmd.OutOrStdout()

	stats, err := sim.Replay(c, ops, out, log)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	if _, err := fmt.Fprintln(out, stats); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
