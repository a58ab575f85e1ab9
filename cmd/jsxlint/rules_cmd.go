package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/yacobolo/jsxlint/internal/lint"
	"github.com/yacobolo/jsxlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rules",
	Long:  `List every rule with its type, whether it can fix issues, and its severity in the recommended preset.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), rulesTable(rules.NewRegistry()))
		return nil
	},
}

func rulesTable(reg *lint.Registry) *table.Table {
	rows := make([][]string, 0, len(reg.Names()))
	for _, rule := range reg.Rules() {
		fixable := ""
		if rule.Fixable {
			fixable = "yes"
		}
		recommended := ""
		if rule.Recommended != lint.SeverityOff {
			recommended = rule.Recommended.String()
		}
		rows = append(rows, []string{rule.Name, string(rule.Type), fixable, recommended, rule.Description})
	}

	return table.New().
		Headers("RULE", "TYPE", "FIX", "RECOMMENDED", "DESCRIPTION").
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 0 {
				return style.Foreground(lipgloss.Color("6"))
			}
			return style
		})
}
