package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "landing",
	Short:        "Rule-based landing page generator",
	Long:         `Landing turns a free-text description into a complete, styled HTML landing page without calling any model.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", ".", "Directory containing config.yaml")
}

// promptFromArgs joins positional args, falling back to --prompt.
func promptFromArgs(cmd *cobra.Command, args []string) (string, error) {
	prompt, _ := cmd.Flags().GetString("prompt")
	if len(args) > 0 {
		prompt = strings.Join(args, " ")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}
	return prompt, nil
}
