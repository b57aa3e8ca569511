package finding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(Store{})
	assert.Equal(t, 0, sum.Total)
	assert.Len(t, sum.ByCategory, 4)
	for _, c := range Categories {
		assert.Equal(t, 0, sum.ByCategory[string(c)])
	}
	assert.Empty(t, sum.BySeverity)
}

func TestSummarize_CountsAddUp(t *testing.T) {
	s := Store{}.
		Replace(CategorySecurity, []Finding{{Severity: SeverityCritical}, {Severity: SeverityHigh}}).
		Replace(CategoryDocs, []Finding{{Severity: SeverityLow}}).
		Replace(CategoryDebt, []Finding{{}, {Severity: SeverityHigh}})

	sum := Summarize(s)
	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, s.Len(), sum.Total)
	assert.Equal(t, map[string]int{
		"security":    2,
		"performance": 0,
		"docs":        1,
		"debt":        2,
	}, sum.ByCategory)
	assert.Equal(t, map[string]int{
		"critical":          1,
		"high":              2,
		"low":               1,
		SeverityUnspecified: 1,
	}, sum.BySeverity)

	bySev := 0
	for _, n := range sum.BySeverity {
		bySev += n
	}
	assert.Equal(t, sum.Total, bySev)
}
