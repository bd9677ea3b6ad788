package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/e2elint/internal/infrastructure/config"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"
)

var rulesOutput string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules and how much each costs",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		catalog := rules.Catalog()

		switch rulesOutput {
		case config.OutputJSON:
			data, err := json.MarshalIndent(catalog, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		case config.OutputYAML:
			return renderYAML(out, catalog)
		case config.OutputText:
		default:
			return fmt.Errorf("%w: unsupported output format %q", config.ErrInvalidConfig, rulesOutput)
		}

		for _, e := range catalog {
			label := positiveStyle.Render("[+]")
			if !e.Positive {
				label = severityLabel(e.Severity)
			}
			fmt.Fprintf(out, "%s %s (%s): %s\n", label, fileStyle.Render(e.ID), e.Scope, e.Description)
			if e.Suggestion != "" {
				fmt.Fprintln(out, hintStyle.Render("    "+e.Suggestion))
			}
		}
		return nil
	},
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesOutput, "output", "o", config.OutputText, "Output format (text, json, yaml)")
	RootCmd.AddCommand(rulesCmd)
}
