// Package rules manages the category rule table file.
package rules

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/store"

	"github.com/spf13/cobra"
)

var rulesFile string

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage the category rule table",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in rule table to a YAML file for hand editing",
	RunE:  initFunc,
}

func init() {
	initCmd.Flags().StringVarP(&rulesFile, "file", "f", "", "Destination rules file (default from configuration)")
	Cmd.AddCommand(initCmd)
}

func initFunc(cmd *cobra.Command, args []string) error {
	file := rulesFile
	if file == "" && root.Cfg != nil {
		file = root.Cfg.Rules.File
	}
	if file == "" {
		file = "rules.yaml"
	}

	s := store.NewRuleStore(file, root.Log)
	if err := s.SaveRules(categorizer.DefaultRules()); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}
	cmd.Printf("Wrote rule table to %s\n", file)
	return nil
}
