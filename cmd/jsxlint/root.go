package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsxlint",
	Short: "Lint rules for React code in JavaScript and TypeScript",
	Long: `jsxlint checks JavaScript, TypeScript and JSX sources for React
lifecycle mistakes, unstable hook dependencies, deprecated elements,
typography and a few style problems. Many findings can be fixed in place.`,
	// Default behavior: lint when no subcommand is given.
	// loadConfig is called here because PreRunE of lintCmd is not triggered
	// when delegating via rootCmd.RunE.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		setupLogging()
		return runLint(cmd.Context(), args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")

	addLintFlags(rootCmd)

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
