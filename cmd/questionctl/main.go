// Package main implements the questionctl CLI for managing the local
// interview question catalog.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
)

const defaultCatalogFile = "data/questions/interview_questions.json"

var rootCmd = &cobra.Command{
	Use:           "questionctl",
	Short:         "Manage the local interview question catalog",
	Long:          "questionctl inspects and edits the JSON question catalog the interview server falls back to when no remote source is reachable.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var catalogFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", defaultCatalogFile, "Path to the question catalog file")
}

// loadCatalog reads the catalog file, seeding from the embedded defaults
// when the file does not exist yet.
func loadCatalog() (map[string][]domain.Question, error) {
	catalog, err := questionbank.LoadFile(catalogFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return questionbank.DefaultCatalog(), nil
		}
		return nil, err
	}
	return catalog, nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
