package extract

import (
	"fmt"
	"regexp"
	"time"

	"github.com/ppiankov/headcount/internal/cache"
)

// peopleCountPattern matches a run of numerals directly followed by a person marker.
// Only the run itself is captured.
var peopleCountPattern = regexp.MustCompile(`([0-9一二三四五六七八九十]+)[人名]`)

// PeopleCount returns every numeral run that is immediately followed by 人 or 名,
// scanning left to right without overlap. A text without such runs yields nil.
func PeopleCount(text string) []string {
	matches := peopleCountPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// Extractor scans field texts for head count tokens
type Extractor struct {
	cache     cache.Cache // Optional memo, nil disables it
	ttl       time.Duration
	stripHTML bool
}

// NewExtractor creates an extractor. c may be nil.
func NewExtractor(c cache.Cache, ttl time.Duration, stripHTML bool) *Extractor {
	return &Extractor{
		cache:     c,
		ttl:       ttl,
		stripHTML: stripHTML,
	}
}

// Extract returns the tokens found in text, reducing it to visible text first
// when HTML stripping is enabled
func (e *Extractor) Extract(text string) ([]string, error) {
	key := e.cacheKey(text)
	if e.cache != nil {
		if tokens, found := e.cache.Get(key); found {
			return tokens, nil
		}
	}

	if e.stripHTML {
		visible, err := VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("strip html: %w", err)
		}
		text = visible
	}

	tokens := PeopleCount(text)

	if e.cache != nil {
		if err := e.cache.Set(key, tokens, e.ttl); err != nil {
			return nil, fmt.Errorf("cache tokens: %w", err)
		}
	}

	return tokens, nil
}

// Cached reports whether the tokens for text are already memoized
func (e *Extractor) Cached(text string) bool {
	if e.cache == nil {
		return false
	}
	_, found := e.cache.Get(e.cacheKey(text))
	return found
}

func (e *Extractor) cacheKey(text string) string {
	if e.stripHTML {
		return cache.CacheKey("html\x00" + text)
	}
	return cache.CacheKey("text\x00" + text)
}
