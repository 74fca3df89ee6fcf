package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskScore(t *testing.T) {
	cases := []struct {
		prob, impact string
		want         int
	}{
		{RiskLevelLow, RiskLevelLow, 1},
		{RiskLevelLow, RiskLevelMedium, 2},
		{RiskLevelLow, RiskLevelHigh, 3},
		{RiskLevelMedium, RiskLevelLow, 2},
		{RiskLevelMedium, RiskLevelMedium, 4},
		{RiskLevelMedium, RiskLevelHigh, 6},
		{RiskLevelHigh, RiskLevelLow, 3},
		{RiskLevelHigh, RiskLevelMedium, 6},
		{RiskLevelHigh, RiskLevelHigh, 9},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RiskScore(tc.prob, tc.impact), "%s x %s", tc.prob, tc.impact)
	}

	// 未知等级权重为0
	assert.Zero(t, RiskScore("Unknown", RiskLevelHigh))
	assert.Zero(t, RiskScore(RiskLevelHigh, ""))
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityRank(PriorityCritical), PriorityRank(PriorityHigh))
	assert.Greater(t, PriorityRank(PriorityHigh), PriorityRank(PriorityMedium))
	assert.Greater(t, PriorityRank(PriorityMedium), PriorityRank(PriorityLow))
	assert.Zero(t, PriorityRank("Unknown"))
}

func TestValidEnum(t *testing.T) {
	assert.True(t, ValidEnum("project_status", ProjectStatusInProgress))
	assert.False(t, ValidEnum("project_status", "Bogus"))
	assert.True(t, ValidEnum("budget_category", BudgetCategoryLicenses))
	assert.False(t, ValidEnum("budget_category", "Hardware"))
	assert.True(t, ValidEnum("sort_key", SortPriorityDesc))
	assert.False(t, ValidEnum("sort_key", "random"))

	assert.Panics(t, func() { ValidEnum("no_such_kind", "x") })
}
