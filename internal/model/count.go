package model

// Field identifies one of the free-text inputs that may state a head count
type Field string

const (
	FieldTitle Field = "title"
	FieldIntro Field = "intro"
	FieldBody  Field = "body"
)

// Fields lists every field in report order
var Fields = []Field{FieldTitle, FieldIntro, FieldBody}

// Label returns the display label used in rendered reports
func (f Field) Label() string {
	switch f {
	case FieldTitle:
		return "タイトル"
	case FieldIntro:
		return "紹介文"
	case FieldBody:
		return "本文"
	default:
		return string(f)
	}
}

// Verdict is the outcome of comparing a field's stated count with the name list
type Verdict string

const (
	VerdictMatch    Verdict = "match"    // First stated count equals the actual count
	VerdictMismatch Verdict = "mismatch" // First stated count differs from the actual count
	VerdictNoData   Verdict = "no-data"  // Field states no count at all
)

// Passed reports whether the verdict counts as consistent.
// A field with no stated count is never flagged.
func (v Verdict) Passed() bool {
	return v != VerdictMismatch
}

// NoDataMarker is displayed in place of an empty value list
const NoDataMarker = "記載なし"

// FieldReport holds everything found in a single field
type FieldReport struct {
	Field   Field    `json:"field"`
	Label   string   `json:"label"`
	Tokens  []string `json:"tokens"`           // Numeral runs as they appear in the text
	Values  []int    `json:"values"`           // Normalized values, same order as Tokens
	Stated  *int     `json:"stated,omitempty"` // First value; nil when the field has none
	Verdict Verdict  `json:"verdict"`
	Message string   `json:"message"`
}

// Mismatch records a field whose stated count disagrees with the name list
type Mismatch struct {
	Field  Field `json:"field"`
	Stated int   `json:"stated"`
	Actual int   `json:"actual"`
}

// Texts carries the three free-text inputs of one check
type Texts struct {
	Title string `json:"title" yaml:"title"`
	Intro string `json:"intro" yaml:"intro"`
	Body  string `json:"body" yaml:"body"`
}

// Get returns the text of field f
func (t Texts) Get(f Field) string {
	switch f {
	case FieldTitle:
		return t.Title
	case FieldIntro:
		return t.Intro
	case FieldBody:
		return t.Body
	default:
		return ""
	}
}
