package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"ohosinfo/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "ohosinfo",
	Short: "Query OpenHarmony device and OS information",
	Long:  "Ohosinfo reads device type, model and OS version information from the OpenHarmony deviceinfo library",
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		app.NewInfoCommand(),
		app.NewGetCommand(),
		app.NewListCommand(),
		app.NewHostCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
