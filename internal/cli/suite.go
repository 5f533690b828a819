package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/headcount/internal/model"
	"github.com/ppiankov/headcount/internal/output"
	"github.com/ppiankov/headcount/internal/pipeline"
)

var outputDir string

// suiteCmd represents the suite command
var suiteCmd = &cobra.Command{
	Use:   "suite <file>",
	Short: "Run several checks described in a YAML file",
	Long: `Suite runs every case of a YAML suite file in order:

  cases:
    - name: chapter-1
      title: 3人が旅に出た
      body_file: texts/chapter1.txt
      names_file: casts/main.txt
    - name: side-story
      intro: 五人の仲間
      names: [Alice, Bob]

Relative paths resolve against the suite file's directory. An inline
"names" list takes precedence over "names_file".

Example:
  headcount suite checks.yaml
  headcount suite checks.yaml --output-dir ./reports --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)

	suiteCmd.Flags().StringVar(&outputDir, "output-dir", "", "write JSON and Markdown reports per case to this directory")
	suiteCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any case mismatches or fails")
}

func runSuite(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	outFormat, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	suite, err := pipeline.LoadSuite(file)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  headcount suite\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Suite file:   %s\n", file)
	fmt.Fprintf(stderr, "  Cases:        %d\n", len(suite.Cases))
	if outputDir != "" {
		fmt.Fprintf(stderr, "  Output dir:   %s\n", outputDir)
	}
	fmt.Fprintf(stderr, "\n")

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	p := pipeline.NewPipeline(cfg, logger)
	results := p.RunSuite(suite)

	var reports []*model.Report
	usedSlugs := make(map[string]bool)
	for _, result := range results {
		switch result.Status {
		case pipeline.StatusFailed:
			fmt.Fprintf(stderr, "✗ %s: %s\n", result.Subject, result.Message)
			continue
		case pipeline.StatusWarning:
			fmt.Fprintf(stderr, "⚠️  %s: %s\n", result.Subject, result.Message)
			continue
		}

		reports = append(reports, result.Report)

		if result.Report.Passed() {
			fmt.Fprintf(stderr, "✓ %s\n", result.Subject)
		} else {
			fmt.Fprintf(stderr, "✗ %s (%d mismatch)\n", result.Subject, len(result.Report.Mismatches()))
		}

		if outputDir != "" {
			slug := uniqueSlug(sanitizeFilename(result.Subject), usedSlugs)
			jsonPath := filepath.Join(outputDir, slug+".json")
			mdPath := filepath.Join(outputDir, slug+".md")
			if err := p.RenderReport(result.Report, jsonPath, mdPath); err != nil {
				fmt.Fprintf(stderr, "✗ %s: %v\n", result.Subject, err)
			}
		}
	}

	rendered, err := output.FormatReports(outFormat, reports)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if rendered != "" {
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}

	summary := pipeline.Summarize(results)
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  Suite Complete\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Total:       %d cases\n", summary.Total)
	fmt.Fprintf(stderr, "  Passed:      %d\n", summary.Passed)
	fmt.Fprintf(stderr, "  Mismatched:  %d\n", summary.Mismatched)
	fmt.Fprintf(stderr, "  Skipped:     %d\n", summary.Skipped)
	fmt.Fprintf(stderr, "  Failures:    %d\n", summary.Failed)
	fmt.Fprintf(stderr, "\n")

	if strict && (summary.Mismatched > 0 || summary.Failed > 0) {
		return fmt.Errorf("%w: %d mismatched, %d failed", errMismatch, summary.Mismatched, summary.Failed)
	}
	return nil
}

// uniqueSlug appends a numeric suffix when slug was already handed out,
// so distinct case names never share a report file
func uniqueSlug(slug string, used map[string]bool) string {
	candidate := slug
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		candidate = fmt.Sprintf("%s-%d", slug, n)
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

// sanitizeFilename sanitizes a string for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(strings.TrimSpace(s))
	if s == "" || s == "." || s == ".." {
		s = "report"
	}

	// Limit length
	runes := []rune(s)
	if len(runes) > 100 {
		s = string(runes[:100])
	}

	return s
}
