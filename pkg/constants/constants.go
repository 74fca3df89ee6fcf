package constants

import "fmt"

// ProjectStatus 项目状态
const (
	ProjectStatusPlanned    = "Planned"
	ProjectStatusInProgress = "InProgress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusAtRisk     = "AtRisk"
	ProjectStatusPaused     = "Paused"
)

// ProjectStatuses 全部合法项目状态
var ProjectStatuses = []string{
	ProjectStatusPlanned,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusAtRisk,
	ProjectStatusPaused,
}

// ProjectPriority 项目优先级
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// priorityRank 优先级排序权重, Critical > High > Medium > Low
var priorityRank = map[string]int{
	PriorityLow:      1,
	PriorityMedium:   2,
	PriorityHigh:     3,
	PriorityCritical: 4,
}

// PriorityRank 返回优先级权重, 未知优先级返回0
func PriorityRank(priority string) int {
	return priorityRank[priority]
}

// NewsCategory 动态分类
const (
	NewsCategoryInfo    = "Info"
	NewsCategoryWarning = "Warning"
	NewsCategorySuccess = "Success"
	NewsCategoryProblem = "Problem"
)

// MilestoneStatus 里程碑状态
const (
	MilestoneStatusPlanned    = "Planned"
	MilestoneStatusInProgress = "InProgress"
	MilestoneStatusDone       = "Done"
	MilestoneStatusDelayed    = "Delayed"
)

// BudgetCategory 预算分类（闭集）
const (
	BudgetCategoryMaterials = "Materials"
	BudgetCategoryResources = "Resources"
	BudgetCategoryServices  = "Services"
	BudgetCategoryLicenses  = "Licenses"
	BudgetCategoryOther     = "Other"
)

// DefaultCurrency 默认币种
const DefaultCurrency = "PLN"

// RiskLevel 风险概率/影响等级
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

// RiskStatus 风险状态
const (
	RiskStatusActive    = "Active"
	RiskStatusMitigated = "Mitigated"
	RiskStatusClosed    = "Closed"
	RiskStatusMonitored = "Monitored"
)

// riskLevelRank 风险等级权重: Low=1 Medium=2 High=3
var riskLevelRank = map[string]int{
	RiskLevelLow:    1,
	RiskLevelMedium: 2,
	RiskLevelHigh:   3,
}

// RiskLevelRank 返回风险等级权重, 未知等级返回0
func RiskLevelRank(level string) int {
	return riskLevelRank[level]
}

// RiskScore 计算风险评分 = 概率权重 × 影响权重
// 读写路径共用此函数, 保证派生值永不发散
func RiskScore(probability, impact string) int {
	return RiskLevelRank(probability) * RiskLevelRank(impact)
}

// SortKey 项目列表排序键
const (
	SortNameAsc      = "name_asc"
	SortNameDesc     = "name_desc"
	SortBudgetAsc    = "budget_asc"
	SortBudgetDesc   = "budget_desc"
	SortProgressAsc  = "progress_asc"
	SortProgressDesc = "progress_desc"
	SortPriorityDesc = "priority_desc"
	SortCreatedDesc  = "created_desc"
)

// SortKeys 全部合法排序键
var SortKeys = []string{
	SortNameAsc, SortNameDesc,
	SortBudgetAsc, SortBudgetDesc,
	SortProgressAsc, SortProgressDesc,
	SortPriorityDesc, SortCreatedDesc,
}

// enumSets 各枚举字段的合法值集合
var enumSets = map[string]map[string]bool{
	"project_status":   toSet(ProjectStatuses),
	"priority":         toSet([]string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}),
	"news_category":    toSet([]string{NewsCategoryInfo, NewsCategoryWarning, NewsCategorySuccess, NewsCategoryProblem}),
	"milestone_status": toSet([]string{MilestoneStatusPlanned, MilestoneStatusInProgress, MilestoneStatusDone, MilestoneStatusDelayed}),
	"budget_category":  toSet([]string{BudgetCategoryMaterials, BudgetCategoryResources, BudgetCategoryServices, BudgetCategoryLicenses, BudgetCategoryOther}),
	"risk_level":       toSet([]string{RiskLevelLow, RiskLevelMedium, RiskLevelHigh}),
	"risk_status":      toSet([]string{RiskStatusActive, RiskStatusMitigated, RiskStatusClosed, RiskStatusMonitored}),
	"sort_key":         toSet(SortKeys),
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// ValidEnum 校验value是否为kind枚举的合法值
func ValidEnum(kind, value string) bool {
	set, ok := enumSets[kind]
	if !ok {
		panic(fmt.Sprintf("unknown enum kind: %s", kind))
	}
	return set[value]
}
