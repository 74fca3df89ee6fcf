package dto

// DashboardStats 组合看板聚合指标
// budget_utilization_pct在total_budget为0时定义为0, 绝不除零
type DashboardStats struct {
	TotalProjects        int64   `json:"total_projects"`
	ActiveProjects       int64   `json:"active_projects"`
	CompletedProjects    int64   `json:"completed_projects"`
	AtRiskProjects       int64   `json:"at_risk_projects"`
	TotalBudget          float64 `json:"total_budget"`
	TotalSpent           float64 `json:"total_spent"`
	BudgetUtilizationPct float64 `json:"budget_utilization_pct"`
	TotalRisks           int64   `json:"total_risks"`
	ActiveRisks          int64   `json:"active_risks"`
	CriticalRisks        int64   `json:"critical_risks"`
}
