package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rljacobson/cps/internal/config"
	"github.com/rljacobson/cps/internal/interp/runtime"
	"github.com/rljacobson/cps/internal/serial"
	"github.com/rljacobson/cps/pkg/cps"
)

var (
	boundsFile string
	locale     string
)

var runCmd = &cobra.Command{
	Use:   "run <fixture.json>",
	Short: "Evaluate a CPS program fixture and print its answer",
	Long: `Decode a JSON program fixture (formals, body, initial arguments),
evaluate it to an Answer, and print the result.

Examples:
  cpsi run identity.json
  cpsi run --bounds bounds.yaml overflow.json`,
	Args: cobra.ExactArgs(1),
	RunE: runFixture,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&boundsFile, "bounds", "", "YAML file overriding the default integer/real bounds")
	runCmd.Flags().StringVar(&locale, "locale", "en", "BCP 47 locale tag for numeric answer formatting")
}

func runFixture(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", args[0], err)
	}

	program, err := serial.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode fixture: %w", err)
	}

	var opts []cps.Option
	if boundsFile != "" {
		b, err := config.LoadBoundsFromYAML(boundsFile)
		if err != nil {
			return fmt.Errorf("failed to load bounds: %w", err)
		}
		opts = append(opts, cps.WithBounds(b))
	}
	if verbose {
		opts = append(opts, cps.WithTrace(func(msg string) {
			fmt.Fprintf(os.Stderr, "[trace] %s\n", msg)
		}))
	}

	engine := cps.New(opts...)
	result, err := engine.Eval(program.Formals, program.Body, program.Args, nil)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	printAnswer(result.Answer)
	return nil
}

// printAnswer prints an Answer's JSON encoding, then — for a plain integer
// answer — a second line with locale-appropriate grouping via x/text,
// since the JSON encoding itself must stay locale-invariant.
func printAnswer(answer any) {
	doc, err := serial.EncodeAnswer(answer)
	if err != nil {
		exitWithError("failed to encode answer: %v", err)
		return
	}
	fmt.Println(doc)

	if iv, ok := answer.(*runtime.IntegerValue); ok {
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.English
		}
		message.NewPrinter(tag).Printf("%v\n", number.Decimal(iv.Value))
	}
}
