// Command mensa2json converts a weekly cafeteria menu PDF into JSON.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyhub-apps/mensa2json/pkg/cache"
	"github.com/pyhub-apps/mensa2json/pkg/menu"
	"github.com/pyhub-apps/mensa2json/pkg/pdf"
)

type options struct {
	pretty    bool
	cachePath string
	engine    string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mensa2json: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "mensa2json plan.pdf",
		Short: "Convert a weekly menu plan PDF to JSON",
		Long: `mensa2json reconstructs the weekly menu table of a cafeteria plan from
the positions of its text and rules and prints one JSON record per day.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// usage is printed for argument errors only, not for failed conversions
			cmd.SilenceUsage = true
			return run(cmd, opts, args[0])
		},
	}

	rootCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&opts.cachePath, "cache", "", "Path of a result cache database (disabled when empty)")
	rootCmd.Flags().StringVar(&opts.engine, "engine", string(pdf.EngineAuto), "PDF backend: auto, ledongthuc, dslipak")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log conversion details to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, inputPath string) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	// backends may decode the same file differently
	var store *cache.Store
	key := cache.Key(data, opts.engine)
	if opts.cachePath != "" {
		store, err = cache.Open(opts.cachePath)
		if err != nil {
			return err
		}
		defer store.Close()

		cached, found, err := store.Get(key)
		if err != nil {
			return err
		}
		if found {
			logger.Debug("cache hit", "key", key)
			return writeOutput(cmd.OutOrStdout(), cached, opts.pretty)
		}
	}

	doc, err := pdf.OpenWithEngine(pdf.Engine(opts.engine), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}
	defer doc.Close()
	logger.Debug("opened document", "path", inputPath, "pages", doc.PageCount(), "engine", opts.engine)

	days, err := menu.NewConverter(menu.WithLogger(logger)).Convert(doc)
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	// the cache holds compact output so a hit can be re-indented on demand
	compact, err := menu.Marshal(days, false)
	if err != nil {
		return err
	}
	if store != nil {
		if err := store.Put(key, compact); err != nil {
			logger.Warn("failed to cache result", "error", err)
		}
	}

	return writeOutput(cmd.OutOrStdout(), compact, opts.pretty)
}

func writeOutput(w io.Writer, compact []byte, pretty bool) error {
	out := compact
	if pretty {
		var days []menu.Day
		if err := json.Unmarshal(compact, &days); err != nil {
			return fmt.Errorf("reading cached result: %w", err)
		}
		indented, err := menu.Marshal(days, true)
		if err != nil {
			return err
		}
		out = indented
	}

	_, err := w.Write(out)
	return err
}
