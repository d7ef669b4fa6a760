// Package main provides the entry point for the Databonnd site server and tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "databonnd_site",
	Short: "Databonnd corporate site",
	Long:  "Serves the Databonnd landing and companies pages with their animated backgrounds, exports them as static files, and captures screenshots.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
