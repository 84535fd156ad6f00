package main

import (
	"context"
	"converter/internal/config"
	"converter/internal/converter"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"converter/pkg/numfmt"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func printEvaluation(w io.Writer, from string, ev converter.Evaluation) error {
	if ev.Err != nil {
		return ev.Err
	}

	_, err := fmt.Fprintf(w, "%s %s = %s %s\n", ev.Source, from, ev.Display.Formatted, ev.Result.Unit)

	return err //nolint: wrapcheck
}

// convertCommand converts a single value and prints it with the configured
// locale. It needs no database.
func convertCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <category> <value> <from> <to>",
		Short:   "Converts a value between two units",
		Example: `  converter convert temperature 100 °C °F`,
		Args:    cobra.ExactArgs(4), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			locale, _ := cmd.Flags().GetString("locale")
			if locale == "" {
				locale = cfg.Converter.Locale
			}
			f, err := numfmt.Parse(locale)
			if err != nil {
				return fmt.Errorf("could not parse locale %q: %w", locale, err)
			}

			scientific, _ := cmd.Flags().GetBool("scientific")
			format := domain.FormatNormal
			if scientific {
				format = domain.FormatScientific
			}

			ev := converter.Evaluate(f, converter.EvaluateRequest{
				Category: args[0],
				Value:    converter.TextValue(args[1]),
				From:     args[2],
				To:       args[3],
				Format:   format,
			})
			if ev.Err != nil {
				logger.Debug(ctx, "conversion failed", zap.Error(ev.Err))
			}

			return printEvaluation(cmd.OutOrStdout(), args[2], ev)
		},
	}

	cmd.Flags().Bool("scientific", false, "Render the result in scientific notation")
	cmd.Flags().String("locale", "", "Digit grouping locale (BCP 47), defaults to the configured locale")

	return cmd
}
