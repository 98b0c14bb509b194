package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brokerdocs/internal/broker"
)

type brokerView struct {
	Code      string   `json:"code"`
	Label     string   `json:"label"`
	Languages []string `json:"languages"`
	Types     []string `json:"types"`
}

func newBrokersCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "brokers",
		Short:       "List supported brokers",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]brokerView, 0, len(broker.All()))
			for _, b := range broker.All() {
				view := brokerView{Code: string(b), Label: b.Label(), Languages: b.SupportedLanguages()}
				for _, t := range b.SupportedTypes() {
					view.Types = append(view.Types, string(t))
				}
				views = append(views, view)
			}
			if asJSON {
				return writeJSON(cmd, views)
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Code, v.Label, strings.Join(v.Languages, ", "), strings.Join(v.Types, ", ")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Code", "Broker", "Languages", "Types"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print brokers as JSON")
	return cmd
}
