package model

import (
	"strconv"
	"strings"
)

// Report is the structured result of one consistency check
type Report struct {
	Subject     string        `json:"subject,omitempty"` // Case name when run from a suite
	Fields      []FieldReport `json:"fields"`            // Always title, intro, body
	Names       []string      `json:"names"`             // Name list as loaded, duplicates kept
	ActualCount int           `json:"actual_count"`      // Distinct entries in Names
}

// Field returns the report for f, or nil if it is absent
func (r *Report) Field(f Field) *FieldReport {
	for i := range r.Fields {
		if r.Fields[i].Field == f {
			return &r.Fields[i]
		}
	}
	return nil
}

// Passed reports whether no field was flagged as a mismatch
func (r *Report) Passed() bool {
	for _, fr := range r.Fields {
		if !fr.Verdict.Passed() {
			return false
		}
	}
	return true
}

// Mismatches lists the flagged fields in report order
func (r *Report) Mismatches() []Mismatch {
	var out []Mismatch
	for _, fr := range r.Fields {
		if fr.Verdict != VerdictMismatch || fr.Stated == nil {
			continue
		}
		out = append(out, Mismatch{
			Field:  fr.Field,
			Stated: *fr.Stated,
			Actual: r.ActualCount,
		})
	}
	return out
}

// DisplayValues returns the values of a field as shown to the user:
// the list itself, or the no-data marker when nothing was stated.
func (fr FieldReport) DisplayValues() string {
	if len(fr.Values) == 0 {
		return NoDataMarker
	}
	return formatInts(fr.Values)
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
