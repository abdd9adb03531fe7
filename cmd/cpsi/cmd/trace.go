package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rljacobson/cps/internal/config"
	"github.com/rljacobson/cps/internal/serial"
	"github.com/rljacobson/cps/pkg/cps"
)

var traceBoundsFile string

var traceCmd = &cobra.Command{
	Use:   "trace <fixture.json>",
	Short: "Evaluate a fixture with a one-line trace of the top-level call",
	Long: `Like "cpsi run", but installs a trace callback that reports the
arity of the initial call before evaluation begins. Intended for
diagnosing fixtures that hang or panic, not for stepping through every
trampoline bounce — the evaluator itself does not expose per-Step hooks,
only the one top-level entry a program's Eval call goes through.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringVar(&traceBoundsFile, "bounds", "", "YAML file overriding the default integer/real bounds")
}

func runTrace(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", args[0], err)
	}

	program, err := serial.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode fixture: %w", err)
	}

	opts := []cps.Option{
		cps.WithTrace(func(msg string) {
			step, encErr := serial.TraceStep(0, msg)
			if encErr != nil {
				fmt.Fprintln(os.Stderr, msg)
				return
			}
			fmt.Fprintln(os.Stderr, step)
		}),
	}
	if traceBoundsFile != "" {
		b, err := config.LoadBoundsFromYAML(traceBoundsFile)
		if err != nil {
			return fmt.Errorf("failed to load bounds: %w", err)
		}
		opts = append(opts, cps.WithBounds(b))
	}

	engine := cps.New(opts...)
	result, err := engine.Eval(program.Formals, program.Body, program.Args, nil)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	printAnswer(result.Answer)
	return nil
}
