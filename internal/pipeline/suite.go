package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite is a list of check cases read from a YAML file
type Suite struct {
	Cases []SuiteCase `yaml:"cases"`

	dir string // Directory relative paths resolve against
}

// SuiteCase is one entry of a suite file
type SuiteCase struct {
	Name      string   `yaml:"name"`
	Title     string   `yaml:"title"`
	Intro     string   `yaml:"intro"`
	Body      string   `yaml:"body"`
	TitleFile string   `yaml:"title_file"`
	IntroFile string   `yaml:"intro_file"`
	BodyFile  string   `yaml:"body_file"`
	NamesFile string   `yaml:"names_file"`
	Names     []string `yaml:"names"` // Takes precedence over NamesFile when present
}

// LoadSuite reads and validates a suite file
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}

	if len(suite.Cases) == 0 {
		return nil, fmt.Errorf("suite %s has no cases", path)
	}

	seen := make(map[string]bool)
	for i := range suite.Cases {
		c := &suite.Cases[i]
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate case name: %s", c.Name)
		}
		seen[c.Name] = true
	}

	suite.dir = filepath.Dir(path)
	return &suite, nil
}

// resolve makes a case-relative path usable from the working directory
func (s *Suite) resolve(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dir, path)
}

// RunSuite checks every case in order. A case whose texts cannot be read
// fails on its own without stopping the rest.
func (p *Pipeline) RunSuite(s *Suite) []*Result {
	reader := NewTextReader(p.config.Input.MaxFieldBytes)
	results := make([]*Result, 0, len(s.Cases))

	for _, c := range s.Cases {
		texts, err := reader.ReadTexts(
			Source{Inline: c.Title, Path: s.resolve(c.TitleFile)},
			Source{Inline: c.Intro, Path: s.resolve(c.IntroFile)},
			Source{Inline: c.Body, Path: s.resolve(c.BodyFile)},
		)
		if err != nil {
			results = append(results, p.failure(p.logger, c.Name, fmt.Errorf("read texts: %w", err)))
			continue
		}

		results = append(results, p.Check(Input{
			Subject:   c.Name,
			Texts:     texts,
			NamesFile: s.resolve(c.NamesFile),
			Names:     c.Names,
		}))
	}

	return results
}

// Summary counts suite outcomes
type Summary struct {
	Total      int
	Passed     int
	Mismatched int
	Skipped    int
	Failed     int
}

// Summarize tallies results
func Summarize(results []*Result) Summary {
	var s Summary
	for _, r := range results {
		s.Total++
		switch r.Status {
		case StatusFailed:
			s.Failed++
		case StatusWarning:
			s.Skipped++
		default:
			if r.Report != nil && r.Report.Passed() {
				s.Passed++
			} else {
				s.Mismatched++
			}
		}
	}
	return s
}
