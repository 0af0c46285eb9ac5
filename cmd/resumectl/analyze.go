package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-engine/internal/analyses"
)

const maxListedRecommendations = 3

//nolint:gochecknoglobals // Cobra boilerplate
var (
	analyzeFileName string
	analyzeJSON     bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.txt>",
	Short: "Score a plain-text résumé",
	Long: `Scores a plain-text résumé and prints the overall score, the category
breakdown and the top recommendations. Use "-" to read from stdin.

Examples:
  resumectl analyze resume.txt --file-name resume.pdf
  cat resume.txt | resumectl analyze - --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeFileName, "file-name", "", "original file name for the file type check (default: the input path)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full analysis as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	var text string
	text, err = readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	fileName := analyzeFileName
	if fileName == "" && args[0] != "-" {
		fileName = filepath.Base(args[0])
	}

	var env analyses.Envelope
	env, err = analysisService().Run(cmd.Context(), uuid.NewString(), text, fileName)
	if err != nil {
		err = errors.Wrap(err, "analysis rejected")
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		return writeJSON(out, env.Result)
	}
	printAnalysis(out, env.Result)
	return nil
}

func printAnalysis(w io.Writer, r analyses.AnalysisResult) {
	title := cases.Title(language.English)
	label := func(s string) string {
		return title.String(strings.ReplaceAll(s, "_", " "))
	}

	fmt.Fprintf(w, "Overall score: %d/100 (%s)\n", r.OverallScore, label(string(r.OverallLevel)))
	fmt.Fprintf(w, "Categories: %d, rule penalty: -%d\n\n", r.CategoryTotal, r.RulePenalty)
	for _, c := range r.Categories.Categories() {
		fmt.Fprintf(w, "  %-22s %2d/%-2d  %s\n", c.Label, c.Score, c.MaxScore, label(string(c.Level)))
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w, "\nTop recommendations:")
		for i, rec := range r.Recommendations {
			if i == maxListedRecommendations {
				break
			}
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, rec.Priority, rec.Title)
			if rec.Before != "" {
				fmt.Fprintf(w, "     before: %s\n     after:  %s\n", rec.Before, rec.After)
			}
		}
	}
	fmt.Fprintf(w, "\nHash: %s (%s)\n", r.Consistency.Hash, r.Consistency.ScoringVersion)
}

func readInput(stdin io.Reader, path string) (text string, err error) {
	var data []byte
	if path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			err = errors.Wrap(err, "failed to read stdin")
			return text, err
		}
		text = string(data)
		return text, err
	}

	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return text, err
	}
	text = string(data)
	return text, err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	return nil
}
