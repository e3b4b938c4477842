package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/isobench/pkg/runtime/logging"
	"github.com/de-tools/isobench/pkg/runtime/terminal/commands"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	globals := &commands.Globals{}
	rootCmd := commands.NewServeCmd(globals)
	rootCmd.Use = "web"
	rootCmd.Short = "Start the isobench report API"
	rootCmd.PersistentFlags().StringVarP(&globals.ConfigPath, "config", "c", "", "Path to an isobench YAML config file")
	rootCmd.PersistentFlags().StringVar(&globals.TestbedPath, "testbed", "", "Path to an ini file describing the test environment")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logger := logging.NewJSON(os.Stdout)
		cmd.SetContext(logger.WithContext(cmd.Context()))
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
