package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/headcount/internal/model"
	"github.com/ppiankov/headcount/internal/observability"
	"github.com/ppiankov/headcount/internal/output"
	"github.com/ppiankov/headcount/internal/pipeline"
)

// errMismatch is returned under --strict when a field disagrees with the name list
var errMismatch = errors.New("head count mismatch")

var (
	title     string
	intro     string
	body      string
	titleFile string
	introFile string
	bodyFile  string
	namesFile string
	subject   string
	outJSON   string
	outMD     string
	strict    bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check title, intro and body against a name list",
	Long: `Check extracts people counts such as "3人" or "五名" from the title,
intro and body, normalizes them, and compares the first count in each field
with the number of distinct names in the name list (one name per line).

A field that states no count is reported as "no data" and never fails.

Example:
  headcount check --title "3人が旅に出た" --names cast.txt
  headcount check --body-file chapter1.txt --names cast.txt --format markdown
  headcount check --intro-file intro.html --strip-html --names - < cast.txt`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Input flags
	checkCmd.Flags().StringVar(&title, "title", "", "title text")
	checkCmd.Flags().StringVar(&intro, "intro", "", "intro text")
	checkCmd.Flags().StringVar(&body, "body", "", "body text")
	checkCmd.Flags().StringVar(&titleFile, "title-file", "", "read title from file (- for stdin)")
	checkCmd.Flags().StringVar(&introFile, "intro-file", "", "read intro from file (- for stdin)")
	checkCmd.Flags().StringVar(&bodyFile, "body-file", "", "read body from file (- for stdin)")
	checkCmd.Flags().StringVarP(&namesFile, "names", "n", "", "name list file, one name per line (- for stdin)")
	checkCmd.Flags().StringVar(&subject, "subject", "", "report subject (default: derived from --body-file)")

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "", "also write the report as JSON to this path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "also write the report as Markdown to this path")
	checkCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any field mismatches")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	outFormat, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	if namesFile == "-" && (titleFile == "-" || introFile == "-" || bodyFile == "-") {
		return fmt.Errorf("names and a field cannot both be read from standard input")
	}

	reader := pipeline.NewTextReader(cfg.Input.MaxFieldBytes)
	texts, err := reader.ReadTexts(
		pipeline.Source{Inline: title, Path: titleFile},
		pipeline.Source{Inline: intro, Path: introFile},
		pipeline.Source{Inline: body, Path: bodyFile},
	)
	if err != nil {
		return fmt.Errorf("read texts: %w", err)
	}

	if subject == "" {
		subject = pipeline.SubjectFromPath(bodyFile)
	}

	p := pipeline.NewPipeline(cfg, logger)
	result := p.Check(pipeline.Input{
		Subject:   subject,
		Texts:     texts,
		NamesFile: namesFile,
	})

	switch result.Status {
	case pipeline.StatusWarning:
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %s\n", result.Message)
		return nil
	case pipeline.StatusFailed:
		return errors.New(result.Message)
	}

	rendered, err := output.NewFormatter(outFormat).Format(result.Report)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)

	if err := p.RenderReport(result.Report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return strictError(result.Report)
}

// setup loads the configuration and builds the logger
func setup() (*model.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Output.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	if cfg.Output.Verbose {
		logger.Debug("configuration",
			zap.String("format", cfg.Output.Format),
			zap.Bool("strip_html", cfg.Input.StripHTML),
			zap.Bool("cache", cfg.Cache.Enabled),
		)
	}

	return cfg, logger, nil
}

func strictError(report *model.Report) error {
	if !strict || report == nil || report.Passed() {
		return nil
	}
	return fmt.Errorf("%w: %d field(s)", errMismatch, len(report.Mismatches()))
}
