package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/cmd/categorize"
	"fjacquet/expense-tracker/cmd/export"
	"fjacquet/expense-tracker/cmd/parse"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/rules"
	"fjacquet/expense-tracker/cmd/serve"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables before configuration is read
	loadEnvSilently()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
