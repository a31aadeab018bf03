package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"landing_page_server/internal/api"
	"landing_page_server/internal/export"
	"landing_page_server/internal/generator"
	"landing_page_server/internal/logging"
	"landing_page_server/internal/types"
	"landing_page_server/internal/utils"
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt...]",
	Short: "Generate a landing page from a prompt",
	Long:  `Prints the generated HTML, or writes landing-page.html into --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := promptFromArgs(cmd, args)
		if err != nil {
			return err
		}
		html, err := generator.Generate(prompt)
		if err != nil {
			return fmt.Errorf("generate landing page: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		}

		w := export.NewWriter(out, logging.New(logging.ParseLevel(os.Getenv("LOG_LEVEL"))))
		paths, err := w.WriteFiles(cmd.Context(), []types.GeneratedFile{{
			Filename: api.DownloadFilename,
			Type:     utils.DetermineFileType(api.DownloadFilename),
			Content:  html,
		}})
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("prompt", "p", "", "Prompt text (positional args take precedence)")
	generateCmd.Flags().StringP("out", "o", "", "Directory to write landing-page.html into")
}
