package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"landing_page_server/internal/generator"
)

var signalsCmd = &cobra.Command{
	Use:   "signals [prompt...]",
	Short: "Show the design signals extracted from a prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := promptFromArgs(cmd, args)
		if err != nil {
			return err
		}
		s := generator.Extract(prompt)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(s); err != nil {
				return err
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		default:
			return fmt.Errorf("unknown format %q, want yaml or json", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(signalsCmd)
	signalsCmd.Flags().StringP("prompt", "p", "", "Prompt text (positional args take precedence)")
	signalsCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
}
