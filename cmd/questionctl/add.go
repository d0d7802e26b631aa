package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/questionbank"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a question to a role, creating the role if needed",
	RunE:  runAdd,
}

var (
	addRole       string
	addQuestion   string
	addType       string
	addDifficulty string
	addKeywords   []string
)

func init() {
	addCmd.Flags().StringVarP(&addRole, "role", "r", "", "Target role (required)")
	addCmd.Flags().StringVarP(&addQuestion, "question", "q", "", "Question text (required)")
	addCmd.Flags().StringVarP(&addType, "type", "t", "technical", "Question type: technical or behavioral")
	addCmd.Flags().StringVarP(&addDifficulty, "difficulty", "d", "", "Difficulty: easy, medium or hard")
	addCmd.Flags().StringSliceVarP(&addKeywords, "keywords", "k", nil, "Comma-separated keywords used for answer scoring")

	if err := addCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	if err := addCmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	q, err := buildCLIQuestion()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	catalog[addRole] = append(catalog[addRole], q)

	if dir := filepath.Dir(catalogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog dir: %w", err)
		}
	}
	if err := questionbank.SaveFile(catalogFile, catalog); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added question to role %q (%d total)\n", addRole, len(catalog[addRole]))
	return nil
}

func buildCLIQuestion() (domain.Question, error) {
	text := strings.TrimSpace(addQuestion)
	if text == "" {
		return domain.Question{}, fmt.Errorf("question text is empty")
	}
	var qt domain.QuestionType
	switch domain.QuestionType(addType) {
	case domain.QuestionTechnical, domain.QuestionBehavioral:
		qt = domain.QuestionType(addType)
	default:
		return domain.Question{}, fmt.Errorf("bad question type %q (want technical or behavioral)", addType)
	}
	var diff domain.Difficulty
	switch domain.Difficulty(addDifficulty) {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard, "":
		diff = domain.Difficulty(addDifficulty)
	default:
		return domain.Question{}, fmt.Errorf("bad difficulty %q (want easy, medium or hard)", addDifficulty)
	}
	keywords := make([]string, 0, len(addKeywords))
	for _, k := range addKeywords {
		if k = strings.TrimSpace(strings.ToLower(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		keywords = nil
	}
	return domain.Question{Text: text, Type: qt, Difficulty: diff, Keywords: keywords}, nil
}
