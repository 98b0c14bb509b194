package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"brokerdocs/internal/preflight"
	"brokerdocs/internal/services"
)

var errChecksFailed = errors.New("preflight checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify directories and translation before a run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg := *base
			if err := applyFlags(cmd, &cfg, &flags); err != nil {
				return err
			}
			b, err := resolveBroker(cfg.Run.Broker)
			if err != nil {
				return err
			}
			lang, err := resolveLanguage(cfg.Run.Language)
			if err != nil {
				return err
			}

			results := preflight.RunAll(preflight.Inputs{
				SourceDir:       cfg.Paths.SourceDir,
				TargetDir:       cfg.Paths.TargetDir,
				TranslationsDir: cfg.Paths.TranslationsDir,
				Broker:          b,
				Language:        lang.Code,
			})

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := paint(colorize, ansiGreen, "ok")
				if !r.Passed {
					status = paint(colorize, ansiRed, "FAIL")
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			fmt.Fprintf(out, "Passed %s checks\n", preflight.Summary(results))

			if err := preflight.FirstFailure(results); err != nil {
				return services.Wrap(services.ErrValidation, "cli", "check", "", errors.Join(errChecksFailed, err))
			}
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}
