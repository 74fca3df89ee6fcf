package database

import (
	"fmt"

	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/pkg/constants"
)

func strPtr(s string) *string { return &s }

// Seed 空库时写入示例组合数据, 已有数据时不做任何事
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Project{}).Count(&count).Error; err != nil {
		return fmt.Errorf("统计项目数量失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	projects := []*model.Project{
		{
			Name:       "Tram Line T1 Modernization",
			Manager:    strPtr("Janina Nowak"),
			Contractor: strPtr("Tor-Bud S.A."),
			BudgetPlan: 5200000,
			Status:     constants.ProjectStatusInProgress,
			Priority:   constants.PriorityHigh,
			StartDate:  strPtr("2024-01-15"),
			EndDate:    strPtr("2025-06-30"),
			Progress:   55,
		},
		{
			Name:       "Park&Ride System Buildout",
			Manager:    strPtr("Adam Kowalski"),
			Contractor: strPtr("Infrasystem Sp. z o.o."),
			BudgetPlan: 3400000,
			Status:     constants.ProjectStatusAtRisk,
			Priority:   constants.PriorityCritical,
			StartDate:  strPtr("2023-09-01"),
			EndDate:    strPtr("2024-12-31"),
			Progress:   40,
		},
		{
			Name:       "New Ticketing System Rollout",
			Manager:    strPtr("Ewa Wisniewska"),
			Contractor: strPtr("PixelTech"),
			BudgetPlan: 1800000,
			Status:     constants.ProjectStatusCompleted,
			Priority:   constants.PriorityMedium,
			StartDate:  strPtr("2023-03-01"),
			EndDate:    strPtr("2024-01-20"),
			Progress:   100,
		},
		{
			Name:       "Infrastructure Cybersecurity",
			Manager:    strPtr("Piotr Zielinski"),
			Contractor: strPtr("SecureNet"),
			BudgetPlan: 2500000,
			Status:     constants.ProjectStatusPlanned,
			Priority:   constants.PriorityHigh,
			StartDate:  strPtr("2025-02-01"),
			EndDate:    strPtr("2025-10-31"),
			Progress:   0,
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&projects).Error; err != nil {
			return fmt.Errorf("写入示例项目失败: %w", err)
		}

		p1, p2 := projects[0].ID, projects[1].ID

		news := []*model.NewsItem{
			{ProjectID: p1, Date: "2024-05-10", Content: "Section A works completed.", Category: constants.NewsCategorySuccess, Author: strPtr("J. Nowak")},
			{ProjectID: p2, Date: "2024-05-20", Content: "Subcontractor delivery problem.", Category: constants.NewsCategoryProblem},
		}
		if err := tx.Create(&news).Error; err != nil {
			return fmt.Errorf("写入示例动态失败: %w", err)
		}

		milestones := []*model.Milestone{
			{ProjectID: p1, Title: "Design phase", StartDate: strPtr("2024-01-15"), EndDate: strPtr("2024-03-31"), Status: constants.MilestoneStatusDone, Progress: 100},
			{ProjectID: p1, Title: "Earthworks", StartDate: strPtr("2024-04-01"), EndDate: strPtr("2024-07-15"), Status: constants.MilestoneStatusInProgress, Progress: 60},
		}
		if err := tx.Create(&milestones).Error; err != nil {
			return fmt.Errorf("写入示例里程碑失败: %w", err)
		}

		budget := []*model.BudgetItem{
			{ProjectID: p1, Name: "Track materials", Category: constants.BudgetCategoryMaterials, Planned: 2000000, Actual: 1800000, Forecast: 1950000, Currency: constants.DefaultCurrency},
			{ProjectID: p1, Name: "Labour", Category: constants.BudgetCategoryResources, Planned: 1500000, Actual: 1200000, Forecast: 1500000, Currency: constants.DefaultCurrency},
		}
		if err := tx.Create(&budget).Error; err != nil {
			return fmt.Errorf("写入示例预算失败: %w", err)
		}

		risks := []*model.Risk{
			{ProjectID: p1, Title: "Material delivery delays", Description: "Steel delivery window slipping.", Probability: constants.RiskLevelMedium, Impact: constants.RiskLevelHigh, Status: constants.RiskStatusActive, MitigationPlan: "Order from alternate supplier."},
			{ProjectID: p1, Title: "Earthworks budget overrun", Description: "Ground conditions worse than surveyed.", Probability: constants.RiskLevelLow, Impact: constants.RiskLevelMedium, Status: constants.RiskStatusActive, MitigationPlan: "Weekly cost control."},
			{ProjectID: p2, Title: "Payment system integration", Description: "Vendor API unstable under load.", Probability: constants.RiskLevelHigh, Impact: constants.RiskLevelHigh, Status: constants.RiskStatusActive, MitigationPlan: "Extra integration testing with vendor."},
		}
		if err := tx.Create(&risks).Error; err != nil {
			return fmt.Errorf("写入示例风险失败: %w", err)
		}

		members := []*model.TeamMember{
			{ProjectID: p1, Name: "Janina Nowak", Role: "Project Manager", Allocation: 100},
			{ProjectID: p1, Name: "Marek Lis", Role: "Site Engineer", Allocation: 80},
		}
		if err := tx.Create(&members).Error; err != nil {
			return fmt.Errorf("写入示例成员失败: %w", err)
		}

		return nil
	})
}
