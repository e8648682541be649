package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "oppa-blog",
	Short:         "Manhva-Oppa blog backend",
	Long:          `Serves the manga blog API, generates posts with an LLM and renders the RSS feed and sitemap.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", ".env", "path to an optional .env file")

	rootCmd.AddCommand(serveCmd, generateCmd, buildCmd, adminCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
