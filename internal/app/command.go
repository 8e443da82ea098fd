package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/gobrc/internal/brc/engine"
	"github.com/shandysiswandi/gobrc/internal/harness"
)

const defaultConfigPath = "./config/config.yaml"

var errResultsDiffer = errors.New("results differ")

// NewCommand builds the gobrc command tree.
func NewCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "gobrc",
		Short:        "Aggregate weather station measurements into min/avg/max per station",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")

	root.AddCommand(
		newRunCommand(&configPath),
		newCompareCommand(&configPath),
		newServeCommand(&configPath),
	)

	return root
}

func newRunCommand(configPath *string) *cobra.Command {
	var (
		workers   int
		reference bool
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Aggregate a measurements file and print the result line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := New(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.cancel()

			path := a.config.GetString("input.path")
			if len(args) == 1 {
				path = args[0]
			}

			var report engine.Report
			if reference {
				report, err = a.engine.AggregateReference(a.ctx, path)
			} else {
				report, err = a.engine.Aggregate(a.ctx, path, workers)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.String())
			fmt.Fprintf(out, "Processed with %d workers.\n", report.Workers)
			fmt.Fprintf(out, "Execution time: %.2f s\n", report.Elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of workers (0 uses min(NumCPU, engine.max_workers))")
	cmd.Flags().BoolVar(&reference, "reference", false, "use the single-threaded reference scan")

	return cmd
}

func newCompareCommand(configPath *string) *cobra.Command {
	var (
		runs      int
		strict    bool
		candidate string
		reference string
	)

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "Time two implementations and compare their result lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := New(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.cancel()

			path := a.config.GetString("input.path")
			if len(args) == 1 {
				path = args[0]
			}
			if runs < 1 {
				runs = int(a.config.GetInt("harness.runs"))
			}

			self, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}

			cand, err := commandFromFlag("candidate", candidate,
				harness.Command{Path: self, Args: []string{"run", path, "--config", *configPath}})
			if err != nil {
				return err
			}
			ref, err := commandFromFlag("reference", reference,
				harness.Command{Path: self, Args: []string{"run", path, "--reference", "--config", *configPath}})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== 1BRC Performance Comparison ===")
			fmt.Fprintln(out)

			res, err := harness.New(runs, out).Compare(a.ctx, cand, ref)
			if err != nil {
				return err
			}

			harness.Report(out, res)
			if strict && !res.Match {
				return errResultsDiffer
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 0, "runs per implementation (0 uses harness.runs)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the results differ")
	cmd.Flags().StringVar(&candidate, "candidate", "", "candidate command line (default: this binary's run)")
	cmd.Flags().StringVar(&reference, "reference", "", "reference command line (default: this binary's run --reference)")

	return cmd
}

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP job service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := New(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			return a.Serve()
		},
	}
}

// commandFromFlag splits a whitespace separated command line, falling back
// to def when the flag is empty.
func commandFromFlag(name, flag string, def harness.Command) (harness.Command, error) {
	def.Name = name

	fields := strings.Fields(flag)
	if len(fields) == 0 {
		if def.Path == "" {
			return harness.Command{}, fmt.Errorf("%s command is required", name)
		}
		return def, nil
	}

	return harness.Command{Name: name, Path: fields[0], Args: fields[1:]}, nil
}
