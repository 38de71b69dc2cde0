package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cropchat",
	Short: "CropChat - a keyword driven farming assistant",
	Long: `CropChat answers crop farming questions from a curated JSON knowledge
base. It detects the crop and topic a message asks about and replies with
the matching guidance over a JSON API and a small web page.`,
}

// Regenerate the swagger docs with: swag init -g cmd/cropchat/main.go -o server/docs

// @title CropChat API
// @version 1.0
// @description Keyword driven farming assistant answering crop questions from a JSON knowledge base.

// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
