package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brokerdocs/internal/config"
	"brokerdocs/internal/document"
	"brokerdocs/internal/extract"
	"brokerdocs/internal/fileutil"
	"brokerdocs/internal/pdftext"
	"brokerdocs/internal/services"
)

type inspectReport struct {
	File   string `json:"file"`
	Date   string `json:"date,omitempty"`
	Type   string `json:"type,omitempty"`
	Code   string `json:"code,omitempty"`
	Target string `json:"target,omitempty"`
	Miss   string `json:"miss,omitempty"`
	Text   string `json:"text,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var flags selectionFlags
	var asJSON bool
	var showText bool

	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Show what brokerdocs extracts from a single PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			ok, err := fileutil.IsPDF(path)
			if err != nil {
				return services.Wrap(services.ErrNotFound, "cli", "inspect", path, err)
			}
			if !ok {
				return services.Wrap(services.ErrValidation, "cli", "inspect", path+" is not a PDF file", nil)
			}

			s, err := ctx.newSession(cmd, &flags)
			if err != nil {
				return err
			}
			runCtx, stop := runContext(cmd)
			defer stop()

			text, err := pdftext.New(s.cfg.Extraction.MaxPages).ExtractText(runCtx, path)
			if err != nil {
				return err
			}

			report := inspectReport{File: path}
			if showText {
				report.Text = text
			}
			plan, miss := s.engine.ProcessOne(document.Source{Path: path, Text: text})
			if miss != "" {
				report.Miss = string(miss)
				report.Date, _ = extract.New(s.lang.DateLabel).Date(text)
			} else {
				plan.FinalFilename = plan.BaseFilename + plan.Extension
				report.Date = plan.Classification.Date
				report.Type = string(plan.Classification.Type)
				report.Code = plan.Classification.Code
				report.Target = plan.RelativePath()
			}

			if asJSON {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			rows := [][]string{
				{"File", report.File},
				{"Date", valueOrDash(report.Date)},
				{"Type", valueOrDash(report.Type)},
				{"Code", valueOrDash(report.Code)},
				{"Target", valueOrDash(report.Target)},
			}
			if report.Miss != "" {
				rows = append(rows, []string{"Miss", report.Miss})
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil))
			if showText {
				fmt.Fprintln(out, report.Text)
			}
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&showText, "text", false, "Include the extracted text")
	return cmd
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
