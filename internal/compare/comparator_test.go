package compare

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/headcount/internal/model"
)

func TestActualCount(t *testing.T) {
	assert.Equal(t, 2, ActualCount([]string{"Alice", "Bob", "Alice"}))
	assert.Equal(t, 2, ActualCount([]string{"Bob", "Alice"}))
	assert.Equal(t, 0, ActualCount(nil))
	assert.Equal(t, 0, ActualCount([]string{}))
}

func TestWithNames_TitleMatch(t *testing.T) {
	report := WithNames("3人が旅に出た", "", "", []string{"Alice", "Bob", "Carol"})

	title := report.Field(model.FieldTitle)
	require.NotNil(t, title)
	assert.Equal(t, []string{"3"}, title.Tokens)
	assert.Equal(t, []int{3}, title.Values)
	assert.Equal(t, 3, report.ActualCount)
	assert.Equal(t, model.VerdictMatch, title.Verdict)
	assert.Equal(t, "タイトル は人名数と一致しています", title.Message)
	assert.True(t, report.Passed())
}

func TestWithNames_IntroMismatch(t *testing.T) {
	report := WithNames("", "五人の仲間", "", []string{"Alice", "Bob"})

	intro := report.Field(model.FieldIntro)
	require.NotNil(t, intro)
	assert.Equal(t, []int{5}, intro.Values)
	assert.Equal(t, model.VerdictMismatch, intro.Verdict)
	assert.Contains(t, intro.Message, "紹介文")
	assert.Contains(t, intro.Message, "（5）")
	assert.Contains(t, intro.Message, "（2）")
	assert.False(t, report.Passed())

	assert.Equal(t, []model.Mismatch{{Field: model.FieldIntro, Stated: 5, Actual: 2}}, report.Mismatches())
}

func TestWithNames_BodyNoData(t *testing.T) {
	for _, names := range [][]string{nil, {"Alice"}, {"Alice", "Bob", "Carol", "Dave"}} {
		report := WithNames("", "", "楽しい物語です", names)

		body := report.Field(model.FieldBody)
		require.NotNil(t, body)
		assert.Empty(t, body.Tokens)
		assert.Empty(t, body.Values)
		assert.Nil(t, body.Stated)
		assert.Equal(t, model.VerdictNoData, body.Verdict)
		assert.Equal(t, model.NoDataMarker, body.DisplayValues())
		assert.True(t, report.Passed())
		assert.Empty(t, report.Mismatches())
	}
}

func TestWithNames_OnlyFirstValueDecides(t *testing.T) {
	names := []string{"Alice", "Bob"}

	report := WithNames("", "", "2人が出会い、やがて5人になった", names)
	body := report.Field(model.FieldBody)
	assert.Equal(t, []int{2, 5}, body.Values)
	assert.Equal(t, model.VerdictMatch, body.Verdict)

	report = WithNames("", "", "5人が出会い、やがて2人になった", names)
	body = report.Field(model.FieldBody)
	assert.Equal(t, model.VerdictMismatch, body.Verdict)
	assert.Equal(t, 5, *body.Stated)
}

func TestWithNames_EmptyNameList(t *testing.T) {
	report := WithNames("3人", "零人", "0人", []string{})

	assert.Equal(t, 0, report.ActualCount)
	assert.Equal(t, model.VerdictMismatch, report.Field(model.FieldTitle).Verdict)
	assert.Equal(t, model.VerdictNoData, report.Field(model.FieldIntro).Verdict)
	assert.Equal(t, model.VerdictMatch, report.Field(model.FieldBody).Verdict)
}

func TestWithNames_FieldOrderAndLabels(t *testing.T) {
	report := WithNames("", "", "", nil)

	require.Len(t, report.Fields, 3)
	assert.Equal(t, model.FieldTitle, report.Fields[0].Field)
	assert.Equal(t, model.FieldIntro, report.Fields[1].Field)
	assert.Equal(t, model.FieldBody, report.Fields[2].Field)
	assert.Equal(t, "タイトル", report.Fields[0].Label)
	assert.Equal(t, "紹介文", report.Fields[1].Label)
	assert.Equal(t, "本文", report.Fields[2].Label)
}

func TestWithNames_DuplicateNames(t *testing.T) {
	report := WithNames("二名の旅", "", "", []string{"Alice", "Bob", "Alice"})

	assert.Equal(t, 2, report.ActualCount)
	assert.Equal(t, []string{"Alice", "Bob", "Alice"}, report.Names)
	assert.Equal(t, model.VerdictMatch, report.Field(model.FieldTitle).Verdict)
}

type failingExtractor struct{}

func (failingExtractor) Extract(string) ([]string, error) {
	return nil, errors.New("boom")
}

func TestComparator_ExtractorError(t *testing.T) {
	_, err := NewComparator(failingExtractor{}).Compare(model.Texts{Title: "3人"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract title")
}

func TestWithNames_AgreesWithComparator(t *testing.T) {
	texts := model.Texts{Title: "3人が旅に出た", Intro: "五人の仲間", Body: "楽しい物語です"}
	names := []string{"Alice", "Bob", "Carol", "Alice"}

	fromComparator, err := NewComparator(nil).Compare(texts, names)
	require.NoError(t, err)

	assert.Equal(t, *fromComparator, WithNames(texts.Title, texts.Intro, texts.Body, names))
}
