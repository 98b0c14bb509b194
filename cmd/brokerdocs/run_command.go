package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/logging"
	"brokerdocs/internal/organizer"
	"brokerdocs/internal/runlock"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Classify source PDFs and copy them into the target tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd, &flags)
			if err != nil {
				return err
			}
			if err := s.preflight(); err != nil {
				return err
			}

			lock, err := runlock.Acquire(s.cfg.Paths.TargetDir)
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					s.logger.Warn("release run lock", logging.Error(err))
				}
			}()

			sources, err := s.sources()
			if err != nil {
				return err
			}

			runCtx, stop := runContext(cmd)
			defer stop()

			summary, err := s.runner(false).Run(runCtx, sources)
			if summary != nil {
				renderSummary(cmd.OutOrStdout(), s.broker, summary)
			}
			return err
		},
	}

	flags.register(cmd, true)
	return cmd
}

func renderSummary(out io.Writer, b broker.Broker, summary *organizer.Summary) {
	colorize := shouldColorize(out)
	verb := "Copied"
	if summary.DryRun {
		verb = "Would copy"
	}
	fmt.Fprintln(out, paint(colorize, ansiGreen, fmt.Sprintf("%s %d files", verb, summary.Copied)))

	rows := make([][]string, 0, len(b.SupportedTypes()))
	for _, t := range b.SupportedTypes() {
		rows = append(rows, []string{string(t), strconv.Itoa(summary.ByType[t])})
	}
	fmt.Fprintln(out, renderTable([]string{"Type", "Files"}, rows, []columnAlignment{alignLeft, alignRight}))

	skipped := len(summary.Skipped)
	if skipped == 0 {
		return
	}
	fmt.Fprintln(out, paint(colorize, ansiYellow, fmt.Sprintf("Skipped %d of %d files", skipped, summary.Sources)))
	missRows := make([][]string, 0, len(organizer.Misses()))
	for _, miss := range organizer.Misses() {
		if n := summary.ByMiss[miss]; n > 0 {
			missRows = append(missRows, []string{string(miss), strconv.Itoa(n)})
		}
	}
	fmt.Fprintln(out, renderTable([]string{"Reason", "Files"}, missRows, []columnAlignment{alignLeft, alignRight}))
}
