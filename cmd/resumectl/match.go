package main

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-engine/internal/matching"
)

//nolint:gochecknoglobals // Cobra boilerplate
var matchJobFile string

//nolint:gochecknoglobals // Cobra boilerplate
var matchCmd = &cobra.Command{
	Use:   "match <resume.txt>",
	Short: "Score a résumé against structured job requirements",
	Long: `Extracts skills, years and education from a plain-text résumé and
scores them against a job requirements JSON file:

  {"hardSkills":[{"skill":"CargoWise","importance":"high"}],
   "technologies":["SQL"],"softSkills":["communication"],
   "experienceKeywords":["5+ years of logistics experience"],
   "educationRequirements":["Bachelor's degree"]}

Examples:
  resumectl match resume.txt --job job.json`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "path to the job requirements JSON file")
	_ = matchCmd.MarkFlagRequired("job")
}

func runMatch(cmd *cobra.Command, args []string) (err error) {
	var text string
	text, err = readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	var job matching.JobRequirements
	job, err = loadJob(matchJobFile)
	if err != nil {
		return err
	}

	var resp matching.Response
	resp, err = matchService().Run(cmd.Context(), uuid.NewString(), matching.Request{ResumeText: text, Job: job})
	if err != nil {
		err = errors.Wrap(err, "match rejected")
		return err
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}

func loadJob(path string) (job matching.JobRequirements, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read job file: %s", path)
		return job, err
	}
	err = json.Unmarshal(data, &job)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse job file: %s", path)
		return job, err
	}
	return job, err
}
