// Package compare checks stated head counts against a name list.
package compare

import (
	"fmt"

	"github.com/ppiankov/headcount/internal/extract"
	"github.com/ppiankov/headcount/internal/model"
)

// TokenExtractor finds head count tokens in a text
type TokenExtractor interface {
	Extract(text string) ([]string, error)
}

type lexicalExtractor struct{}

func (lexicalExtractor) Extract(text string) ([]string, error) {
	return extract.PeopleCount(text), nil
}

// Comparator builds consistency reports
type Comparator struct {
	extractor TokenExtractor
}

// NewComparator creates a comparator. A nil extractor scans texts as-is.
func NewComparator(extractor TokenExtractor) *Comparator {
	if extractor == nil {
		extractor = lexicalExtractor{}
	}
	return &Comparator{extractor: extractor}
}

// WithNames scans title, intro and body and compares each against the number
// of distinct names
func WithNames(title, intro, body string, names []string) model.Report {
	texts := model.Texts{Title: title, Intro: intro, Body: body}
	report := newReport(names)
	for _, field := range model.Fields {
		tokens := extract.PeopleCount(texts.Get(field))
		report.Fields = append(report.Fields, fieldReport(field, tokens, report.ActualCount))
	}
	return *report
}

// Compare produces the report for texts. Only the first value found in a field
// decides its verdict; a field without values is reported as no-data and passes.
func (c *Comparator) Compare(texts model.Texts, names []string) (*model.Report, error) {
	report := newReport(names)

	for _, field := range model.Fields {
		tokens, err := c.extractor.Extract(texts.Get(field))
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", field, err)
		}
		report.Fields = append(report.Fields, fieldReport(field, tokens, report.ActualCount))
	}

	return report, nil
}

func newReport(names []string) *model.Report {
	return &model.Report{
		Fields:      make([]model.FieldReport, 0, len(model.Fields)),
		Names:       append([]string{}, names...),
		ActualCount: ActualCount(names),
	}
}

// ActualCount is the number of distinct names, ignoring order and repeats
func ActualCount(names []string) int {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	return len(seen)
}

func fieldReport(field model.Field, tokens []string, actual int) model.FieldReport {
	if tokens == nil {
		tokens = []string{}
	}

	fr := model.FieldReport{
		Field:  field,
		Label:  field.Label(),
		Tokens: tokens,
		Values: extract.NormalizeAll(tokens),
	}

	if len(fr.Values) == 0 {
		fr.Verdict = model.VerdictNoData
		fr.Message = fmt.Sprintf("%s は人名数と一致しています", fr.Label)
		return fr
	}

	stated := fr.Values[0]
	fr.Stated = &stated

	if stated == actual {
		fr.Verdict = model.VerdictMatch
		fr.Message = fmt.Sprintf("%s は人名数と一致しています", fr.Label)
	} else {
		fr.Verdict = model.VerdictMismatch
		fr.Message = fmt.Sprintf("%s に記載された人数（%d）と人名数（%d）が一致しません！", fr.Label, stated, actual)
	}

	return fr
}
