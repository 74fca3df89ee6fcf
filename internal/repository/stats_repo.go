package repository

import (
	"gorm.io/gorm"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type StatsRepository interface {
	DashboardStats() (*dto.DashboardStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// DashboardStats 单事务内读取全部指标, 各计数来自同一快照
func (r *statsRepository) DashboardStats() (*dto.DashboardStats, error) {
	var stats dto.DashboardStats
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Project{}).Count(&stats.TotalProjects).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Project{}).
			Where("status = ?", constants.ProjectStatusInProgress).
			Count(&stats.ActiveProjects).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Project{}).
			Where("status = ?", constants.ProjectStatusCompleted).
			Count(&stats.CompletedProjects).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Project{}).
			Where("status = ?", constants.ProjectStatusAtRisk).
			Count(&stats.AtRiskProjects).Error; err != nil {
			return err
		}

		type budgetRow struct {
			Total float64
			Spent float64
		}
		var budget budgetRow
		if err := tx.Model(&model.Project{}).
			Select("COALESCE(SUM(budget_plan), 0) total").
			Scan(&budget.Total).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.BudgetItem{}).
			Select("COALESCE(SUM(actual), 0) spent").
			Scan(&budget.Spent).Error; err != nil {
			return err
		}
		stats.TotalBudget = budget.Total
		stats.TotalSpent = budget.Spent
		// 总预算为0时利用率定义为0
		if budget.Total > 0 {
			stats.BudgetUtilizationPct = budget.Spent / budget.Total * 100
		}

		if err := tx.Model(&model.Risk{}).Count(&stats.TotalRisks).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Risk{}).
			Where("status = ?", constants.RiskStatusActive).
			Count(&stats.ActiveRisks).Error; err != nil {
			return err
		}
		// 严重风险 = 概率与影响均为High, 与状态无关
		return tx.Model(&model.Risk{}).
			Where("probability = ? AND impact = ?", constants.RiskLevelHigh, constants.RiskLevelHigh).
			Count(&stats.CriticalRisks).Error
	})
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计看板指标失败", err)
	}
	return &stats, nil
}
