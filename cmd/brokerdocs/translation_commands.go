package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/document"
	"brokerdocs/internal/translation"
)

func newTranslationCommand(ctx *commandContext) *cobra.Command {
	translationCmd := &cobra.Command{
		Use:   "translation",
		Short: "Translation file utilities",
	}
	translationCmd.AddCommand(newTranslationValidateCommand(ctx))
	return translationCmd
}

func newTranslationValidateCommand(ctx *commandContext) *cobra.Command {
	var langFlag string
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a translation file covers every required key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			value := cfg.Run.Language
			if cmd.Flags().Changed("lang") {
				value = langFlag
			}
			lang, err := resolveLanguage(value)
			if err != nil {
				return err
			}
			dir := cfg.Paths.TranslationsDir
			if cmd.Flags().Changed("dir") {
				dir = strings.TrimSpace(dirFlag)
			}

			dict, err := translation.ValidateLanguage(lang.Code, dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Translation %s (%s) is valid\n", lang.Code, dict.Source)
			rows := make([][]string, 0, len(document.Directories()))
			for _, dir := range document.Directories() {
				label, _ := dict.DirectoryLabel(dir)
				rows = append(rows, []string{"target_directories." + string(dir), valueOrDash(label)})
			}
			for _, b := range broker.SupportingLanguage(lang.Code) {
				for _, t := range b.ClassifiableTypes() {
					indicator, _ := dict.Indicator(b, t)
					rows = append(rows, []string{string(b) + ".indicators." + string(t), indicator})
				}
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().StringVarP(&langFlag, "lang", "l", "", "Language to validate")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Translation directory (defaults to paths.translations_dir, then built-in files)")
	return cmd
}
