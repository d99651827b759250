package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// Verification is the outcome of comparing a report with its reference.
type Verification struct {
	Passed bool
	// Diff is a unified diff from reference to output; empty when Passed.
	Diff string
}

// Verify compares the files at outputPath and referencePath byte for byte.
func Verify(outputPath, referencePath string) (Verification, error) {
	got, err := os.ReadFile(outputPath)
	if err != nil {
		return Verification{}, fmt.Errorf("read output: %w", err)
	}
	want, err := os.ReadFile(referencePath)
	if err != nil {
		return Verification{}, fmt.Errorf("read reference: %w", err)
	}

	if bytes.Equal(got, want) {
		return Verification{Passed: true}, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: referencePath,
		ToFile:   outputPath,
		Context:  2,
	})
	if err != nil {
		return Verification{}, fmt.Errorf("diff: %w", err)
	}

	return Verification{Passed: false, Diff: diff}, nil
}
