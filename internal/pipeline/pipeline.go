package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/headcount/internal/cache"
	"github.com/ppiankov/headcount/internal/compare"
	"github.com/ppiankov/headcount/internal/extract"
	"github.com/ppiankov/headcount/internal/model"
	"github.com/ppiankov/headcount/internal/names"
	"github.com/ppiankov/headcount/internal/output"
)

// Status is the overall outcome of one check invocation
type Status string

const (
	StatusOK      Status = "ok"      // Report produced
	StatusWarning Status = "warning" // Comparison skipped, nothing to report
	StatusFailed  Status = "failed"  // Input could not be loaded
)

// MissingNamesMessage is shown when a check runs without a name list
const MissingNamesMessage = "人名リストファイルをアップロードしてください。"

// Input is one check request
type Input struct {
	Subject   string
	Texts     model.Texts
	NamesFile string   // Read when Names is nil
	Names     []string // Inline list, cleaned like file lines
}

// Result is what a caller renders. Check never returns an error: every
// failure is described by Status and Message.
type Result struct {
	Subject string        `json:"subject,omitempty"`
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Report  *model.Report `json:"report,omitempty"`
	Err     error         `json:"-"`
}

// Pipeline orchestrates name loading, extraction and comparison
type Pipeline struct {
	loader     *names.Loader
	extractor  *extract.Extractor
	comparator *compare.Comparator
	renderer   *output.Renderer
	logger     *zap.Logger
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	var memo cache.Cache
	if cfg.Cache.Enabled {
		memo = cache.NewMemoryCache(cfg.Cache.TTL, time.Minute)
	}

	extractor := extract.NewExtractor(memo, cfg.Cache.TTL, cfg.Input.StripHTML)

	return &Pipeline{
		loader:     names.NewLoader(cfg.Names.MaxBytes, cfg.Names.CommentPrefix),
		extractor:  extractor,
		comparator: compare.NewComparator(extractor),
		renderer:   output.NewRenderer(),
		logger:     logger,
		config:     cfg,
	}
}

// Check runs one consistency check
func (p *Pipeline) Check(in Input) *Result {
	log := p.logger
	if in.Subject != "" {
		log = log.With(zap.String("subject", in.Subject))
	}

	// 1. Load names
	nameList, err := p.resolveNames(in)
	if err != nil {
		return p.failure(log, in.Subject, err)
	}
	log.Debug("loaded names", zap.Int("lines", len(nameList)))

	// 2. Extract, normalize and compare
	for _, f := range model.Fields {
		if p.extractor.Cached(in.Texts.Get(f)) {
			log.Debug("extraction cache hit", zap.String("field", string(f)))
		}
	}

	report, err := p.comparator.Compare(in.Texts, nameList)
	if err != nil {
		return p.failure(log, in.Subject, err)
	}
	report.Subject = in.Subject

	for _, fr := range report.Fields {
		log.Debug("field scanned",
			zap.String("field", string(fr.Field)),
			zap.Strings("tokens", fr.Tokens),
			zap.Ints("values", fr.Values),
			zap.String("verdict", string(fr.Verdict)),
		)
	}
	log.Debug("compared", zap.Int("actual_count", report.ActualCount), zap.Bool("passed", report.Passed()))

	return &Result{
		Subject: in.Subject,
		Status:  StatusOK,
		Report:  report,
	}
}

func (p *Pipeline) resolveNames(in Input) ([]string, error) {
	if in.Names != nil {
		return p.loader.Parse([]byte(strings.Join(in.Names, "\n")))
	}
	return p.loader.LoadFile(in.NamesFile)
}

// failure converts a load or compare error into a user-facing result
func (p *Pipeline) failure(log *zap.Logger, subject string, err error) *Result {
	if errors.Is(err, names.ErrMissingInput) {
		log.Warn("comparison skipped", zap.Error(err))
		return &Result{
			Subject: subject,
			Status:  StatusWarning,
			Message: MissingNamesMessage,
			Err:     err,
		}
	}

	var decodeErr *names.DecodeError
	message := fmt.Sprintf("チェックに失敗しました: %v", err)
	if errors.As(err, &decodeErr) {
		message = fmt.Sprintf("人名リストファイルを読み込めません: %v", decodeErr)
	}

	log.Error("check failed", zap.Error(err))
	return &Result{
		Subject: subject,
		Status:  StatusFailed,
		Message: message,
		Err:     err,
	}
}

// RenderReport writes the report to the optional JSON and Markdown paths
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		p.logger.Info("wrote JSON", zap.String("path", jsonPath))
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		p.logger.Info("wrote Markdown", zap.String("path", mdPath))
	}

	return nil
}
