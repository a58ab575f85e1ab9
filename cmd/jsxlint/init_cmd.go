package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .jsxlint.yaml config file",
	Long:  `Create a .jsxlint.yaml configuration file in the current directory with the recommended preset.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return errors.Newf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return errors.Wrap(err, "writing config file")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# jsxlint configuration

# Base rule set: recommended | all | none
preset: recommended
verbose: false

# Per-rule settings. A severity (off | warn | error) or a map with
# severity and options.
rules:
  no-unstable-dependencies: warn
  require-typography: off
  max-indentation:
    severity: warn
    options:
      limit: 5
      spacesPerTab: 4
  no-deprecated-element:
    severity: off
    options:
      deprecate: []
      # - element: OldButton
      #   replace:
      #     element: Button
      #     addProps:
      #       - key: variant
      #         defaultValue: '"secondary"'
      #     removeProps: [legacy]

lint:
  paths:
    - "src/**/*.{js,jsx,ts,tsx}"
  fix: false
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
  concurrency: 0           # 0 = number of CPUs
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
