package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"brokerdocs/internal/organizer"
	"brokerdocs/internal/services"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

type planRow struct {
	Source string `json:"source" csv:"source"`
	Status string `json:"status" csv:"status"`
	Type   string `json:"type,omitempty" csv:"type"`
	Code   string `json:"code,omitempty" csv:"code"`
	Date   string `json:"date,omitempty" csv:"date"`
	Target string `json:"target,omitempty" csv:"target"`
	Reason string `json:"reason,omitempty" csv:"reason"`
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var flags selectionFlags
	var format string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show where each source PDF would be copied without copying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case formatTable, formatJSON, formatCSV:
			default:
				return services.Wrap(services.ErrValidation, "cli", "plan", fmt.Sprintf("unknown format %q (use table, json or csv)", format), nil)
			}

			s, err := ctx.newSession(cmd, &flags)
			if err != nil {
				return err
			}
			if err := s.preflight(); err != nil {
				return err
			}
			sources, err := s.sources()
			if err != nil {
				return err
			}

			runCtx, stop := runContext(cmd)
			defer stop()

			summary, err := s.runner(true).Run(runCtx, sources)
			if err != nil {
				return err
			}
			rows := planRows(s.cfg.Paths.SourceDir, summary)

			switch format {
			case formatJSON:
				return writeJSON(cmd, rows)
			case formatCSV:
				return gocsv.Marshal(rows, cmd.OutOrStdout())
			default:
				out := cmd.OutOrStdout()
				table := make([][]string, 0, len(rows))
				for _, r := range rows {
					detail := r.Target
					if r.Status != "planned" {
						detail = r.Reason
					}
					table = append(table, []string{r.Source, r.Type, r.Code, detail})
				}
				fmt.Fprintln(out, renderTable([]string{"Source", "Type", "Code", "Target"}, table, nil))
				renderSummary(out, s.broker, summary)
				return nil
			}
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json or csv")
	return cmd
}

// planRows merges planned copies and skips into one list ordered by source.
func planRows(sourceDir string, summary *organizer.Summary) []*planRow {
	rows := make([]*planRow, 0, summary.Sources)
	results, skipped := summary.Results, summary.Skipped
	for len(results) > 0 || len(skipped) > 0 {
		if len(skipped) == 0 || (len(results) > 0 && results[0].Source < skipped[0].Source) {
			r := results[0]
			results = results[1:]
			rows = append(rows, &planRow{
				Source: relativeTo(sourceDir, r.Source),
				Status: "planned",
				Type:   string(r.Type),
				Code:   r.Code,
				Date:   r.Date,
				Target: r.Relative,
			})
			continue
		}
		sk := skipped[0]
		skipped = skipped[1:]
		rows = append(rows, &planRow{
			Source: relativeTo(sourceDir, sk.Source),
			Status: "skipped",
			Reason: string(sk.Reason),
		})
	}
	return rows
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
