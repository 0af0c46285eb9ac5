package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Experience
• Increased revenue by 25% through new pricing strategy, 2016 - 2024
• Responsible for customer support across 3 regions

Education
Bachelor of Science, State University

Skills
Excel, SQL, CargoWise`

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		analyzeJSON, analyzeFileName, matchJobFile = false, "", ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeStdin(t *testing.T) {
	out, err := runCLI(t, sampleResume, "analyze", "-", "--file-name", "jane.pdf")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, want := range []string{"Overall score:", "Keywords & Verbiage", "Hash:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestAnalyzeRejectsShortText(t *testing.T) {
	_, err := runCLI(t, "too short", "analyze", "-")
	if err == nil || !strings.Contains(err.Error(), "analysis rejected") {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestMatchWithJobFile(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	job := filepath.Join(dir, "job.json")
	if err := os.WriteFile(resume, []byte(sampleResume), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(job, []byte(`{"hardSkills":[{"skill":"CargoWise","importance":"high"}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "", "match", resume, "--job", job)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !strings.Contains(out, `"matchScore"`) {
		t.Fatalf("expected JSON match result, got:\n%s", out)
	}
}

func TestMatchMissingJobFile(t *testing.T) {
	_, err := runCLI(t, sampleResume, "match", "-", "--job", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read job file") {
		t.Fatalf("expected read error, got %v", err)
	}
}
