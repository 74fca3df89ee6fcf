package repository

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/database"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

var testDBSeq int64

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

func newProject(name string) *model.Project {
	desc := "opis projektu"
	mgr := "Jan Kowalski"
	return &model.Project{
		Name:        name,
		Description: &desc,
		Manager:     &mgr,
		BudgetPlan:  100000,
		Status:      constants.ProjectStatusInProgress,
		Priority:    constants.PriorityHigh,
		Progress:    30,
	}
}

func TestProjectRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	p := newProject("Alpha")
	require.NoError(t, repo.Create(p))
	require.NotZero(t, p.ID)

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
	assert.Equal(t, "opis projektu", *got.Description)
	assert.Equal(t, constants.ProjectStatusInProgress, got.Status)
	assert.Equal(t, 30, got.Progress)
	// 新建行的创建时间与更新时间一致
	assert.WithinDuration(t, got.CreatedAt, got.UpdatedAt, time.Millisecond)
}

func TestProjectRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.FindByID(999)
	require.Error(t, err)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeNotFound))
}

func TestProjectRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Create(newProject("Alpha")))
	err := repo.Create(newProject("Alpha"))
	require.Error(t, err)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestProjectRepository_FindWithStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	p := newProject("Alpha")
	require.NoError(t, repo.Create(p))

	// Alpha: 40000 + 20000 = 60000
	require.NoError(t, db.Create(&model.BudgetItem{
		ProjectID: p.ID, Name: "Servers", Category: constants.BudgetCategoryMaterials,
		Planned: 50000, Actual: 40000, Forecast: 45000, Currency: "PLN",
	}).Error)
	require.NoError(t, db.Create(&model.BudgetItem{
		ProjectID: p.ID, Name: "Consulting", Category: constants.BudgetCategoryServices,
		Planned: 30000, Actual: 20000, Forecast: 25000, Currency: "PLN",
	}).Error)

	require.NoError(t, db.Create(&model.Risk{
		ProjectID: p.ID, Title: "Supply delay", Description: "opóźnienie dostaw",
		Probability: constants.RiskLevelHigh, Impact: constants.RiskLevelHigh,
		Status: constants.RiskStatusActive,
	}).Error)
	require.NoError(t, db.Create(&model.Risk{
		ProjectID: p.ID, Title: "Closed one", Description: "zamknięte",
		Probability: constants.RiskLevelLow, Impact: constants.RiskLevelLow,
		Status: constants.RiskStatusClosed,
	}).Error)

	require.NoError(t, db.Create(&model.Milestone{
		ProjectID: p.ID, Title: "Kickoff", Status: constants.MilestoneStatusDone, Progress: 100,
	}).Error)
	require.NoError(t, db.Create(&model.Milestone{
		ProjectID: p.ID, Title: "Phase 2", Status: constants.MilestoneStatusPlanned,
	}).Error)

	require.NoError(t, db.Create(&model.TeamMember{
		ProjectID: p.ID, Name: "Anna", Role: "PM", Allocation: 80,
	}).Error)
	require.NoError(t, db.Create(&model.TeamMember{
		ProjectID: p.ID, Name: "Marek", Role: "Dev", Allocation: 60,
	}).Error)

	row, err := repo.FindWithStats(p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(60000), row.BudgetActual)
	assert.Equal(t, float64(80000), row.BudgetPlanned)
	assert.Equal(t, float64(70000), row.BudgetForecast)
	assert.Equal(t, int64(1), row.ActiveRisks)
	assert.Equal(t, int64(1), row.MilestonesDone)
	assert.Equal(t, int64(2), row.MilestonesTotal)
	assert.Equal(t, int64(2), row.TeamSize)
	assert.Equal(t, float64(70), row.MeanAllocation)
}

func TestProjectRepository_FindWithStats_NoChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	p := newProject("Empty")
	require.NoError(t, repo.Create(p))

	row, err := repo.FindWithStats(p.ID)
	require.NoError(t, err)
	assert.Zero(t, row.BudgetActual)
	assert.Zero(t, row.ActiveRisks)
	assert.Zero(t, row.MilestonesTotal)
	assert.Zero(t, row.TeamSize)
	assert.Zero(t, row.MeanAllocation)
}

func TestProjectRepository_List_FilterAndSort(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	mk := func(name, status, priority string, budget float64) {
		p := newProject(name)
		p.Status = status
		p.Priority = priority
		p.BudgetPlan = budget
		require.NoError(t, repo.Create(p))
	}
	mk("Alpha", constants.ProjectStatusInProgress, constants.PriorityLow, 100)
	mk("Beta", constants.ProjectStatusCompleted, constants.PriorityCritical, 300)
	mk("Gamma", constants.ProjectStatusInProgress, constants.PriorityHigh, 200)

	// 状态过滤
	rows, err := repo.List(ProjectFilter{Status: constants.ProjectStatusInProgress})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, constants.ProjectStatusInProgress, row.Status)
	}

	// 优先级排序: Critical > High > Low
	rows, err = repo.List(ProjectFilter{Sort: constants.SortPriorityDesc})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Beta", rows[0].Name)
	assert.Equal(t, "Gamma", rows[1].Name)
	assert.Equal(t, "Alpha", rows[2].Name)

	// 名称排序
	rows, err = repo.List(ProjectFilter{Sort: constants.SortNameAsc})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", rows[0].Name)
	assert.Equal(t, "Gamma", rows[2].Name)

	// 预算排序
	rows, err = repo.List(ProjectFilter{Sort: constants.SortBudgetDesc})
	require.NoError(t, err)
	assert.Equal(t, "Beta", rows[0].Name)

	// 大小写不敏感搜索
	rows, err = repo.List(ProjectFilter{Search: "gam"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gamma", rows[0].Name)

	// 无匹配返回空序列
	rows, err = repo.List(ProjectFilter{Search: "xyz-nothing"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProjectRepository_Delete_Cascade(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	victim := newProject("Victim")
	keeper := newProject("Keeper")
	require.NoError(t, repo.Create(victim))
	require.NoError(t, repo.Create(keeper))

	for _, pid := range []int64{victim.ID, keeper.ID} {
		require.NoError(t, db.Create(&model.NewsItem{ProjectID: pid, Date: "2025-01-01", Content: "c", Category: "Info"}).Error)
		require.NoError(t, db.Create(&model.Milestone{ProjectID: pid, Title: "m", Status: "Planned"}).Error)
		require.NoError(t, db.Create(&model.BudgetItem{ProjectID: pid, Name: "b", Category: "Other", Currency: "PLN"}).Error)
		require.NoError(t, db.Create(&model.Risk{ProjectID: pid, Title: "r", Description: "d",
			Probability: "Low", Impact: "Low", Status: "Active"}).Error)
		require.NoError(t, db.Create(&model.TeamMember{ProjectID: pid, Name: "n", Role: "r", Allocation: 50}).Error)
	}

	require.NoError(t, repo.Delete(victim.ID))

	// victim的从属行全部删除
	for _, m := range []interface{}{
		&model.NewsItem{}, &model.Milestone{}, &model.BudgetItem{}, &model.Risk{}, &model.TeamMember{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Where("project_id = ?", victim.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	// keeper的从属行原封不动
	for _, m := range []interface{}{
		&model.NewsItem{}, &model.Milestone{}, &model.BudgetItem{}, &model.Risk{}, &model.TeamMember{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Where("project_id = ?", keeper.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	}

	_, err := repo.FindByID(victim.ID)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeNotFound))
}

func TestRiskRepository_ScoreHooks(t *testing.T) {
	db := newTestDB(t)
	projectRepo := NewProjectRepository(db)
	riskRepo := NewRiskRepository(db)

	p := newProject("Risky")
	require.NoError(t, projectRepo.Create(p))

	// 概率×影响的全部9种组合
	cases := []struct {
		prob, impact string
		score        int
	}{
		{"Low", "Low", 1}, {"Low", "Medium", 2}, {"Low", "High", 3},
		{"Medium", "Low", 2}, {"Medium", "Medium", 4}, {"Medium", "High", 6},
		{"High", "Low", 3}, {"High", "Medium", 6}, {"High", "High", 9},
	}
	for _, tc := range cases {
		risk := &model.Risk{
			ProjectID: p.ID, Title: tc.prob + "x" + tc.impact, Description: "d",
			Probability: tc.prob, Impact: tc.impact, Status: constants.RiskStatusActive,
		}
		require.NoError(t, riskRepo.Create(risk))
		assert.Equal(t, tc.score, risk.RiskScore, "%s x %s", tc.prob, tc.impact)

		got, err := riskRepo.FindByID(risk.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.score, got.RiskScore)
	}

	// 更新概率/影响后评分重算
	risk := &model.Risk{
		ProjectID: p.ID, Title: "mutating", Description: "d",
		Probability: "Low", Impact: "Low", Status: constants.RiskStatusActive,
	}
	require.NoError(t, riskRepo.Create(risk))
	require.Equal(t, 1, risk.RiskScore)

	risk.Probability = "High"
	risk.Impact = "High"
	require.NoError(t, riskRepo.Update(risk))
	assert.Equal(t, 9, risk.RiskScore)

	got, err := riskRepo.FindByID(risk.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.RiskScore)
}

func TestRiskRepository_ListByProject(t *testing.T) {
	db := newTestDB(t)
	projectRepo := NewProjectRepository(db)
	riskRepo := NewRiskRepository(db)

	p := newProject("Risky")
	require.NoError(t, projectRepo.Create(p))

	require.NoError(t, riskRepo.Create(&model.Risk{
		ProjectID: p.ID, Title: "small", Description: "d",
		Probability: "Low", Impact: "Low", Status: constants.RiskStatusActive,
	}))
	require.NoError(t, riskRepo.Create(&model.Risk{
		ProjectID: p.ID, Title: "big", Description: "d",
		Probability: "High", Impact: "High", Status: constants.RiskStatusActive,
	}))
	require.NoError(t, riskRepo.Create(&model.Risk{
		ProjectID: p.ID, Title: "mitigated", Description: "d",
		Probability: "High", Impact: "Medium", Status: constants.RiskStatusMitigated,
	}))

	// 评分倒序
	all, err := riskRepo.ListByProject(p.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "big", all[0].Title)
	assert.Equal(t, 9, all[0].RiskScore)

	// 状态过滤
	active, err := riskRepo.ListByProject(p.ID, constants.RiskStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, r := range active {
		assert.Equal(t, constants.RiskStatusActive, r.Status)
	}
}

func TestStatsRepository_Dashboard(t *testing.T) {
	db := newTestDB(t)
	projectRepo := NewProjectRepository(db)
	statsRepo := NewStatsRepository(db)

	mk := func(name, status string, budget float64) *model.Project {
		p := newProject(name)
		p.Status = status
		p.BudgetPlan = budget
		require.NoError(t, projectRepo.Create(p))
		return p
	}
	active := mk("Active", constants.ProjectStatusInProgress, 100000)
	mk("Done", constants.ProjectStatusCompleted, 50000)
	mk("Shaky", constants.ProjectStatusAtRisk, 50000)

	require.NoError(t, db.Create(&model.BudgetItem{
		ProjectID: active.ID, Name: "spend", Category: "Other",
		Actual: 50000, Currency: "PLN",
	}).Error)
	require.NoError(t, db.Create(&model.Risk{
		ProjectID: active.ID, Title: "critical", Description: "d",
		Probability: "High", Impact: "High", Status: constants.RiskStatusActive,
	}).Error)
	require.NoError(t, db.Create(&model.Risk{
		ProjectID: active.ID, Title: "minor", Description: "d",
		Probability: "High", Impact: "Low", Status: constants.RiskStatusClosed,
	}).Error)
	// 已缓解的High×High风险仍计入严重风险
	require.NoError(t, db.Create(&model.Risk{
		ProjectID: active.ID, Title: "handled", Description: "d",
		Probability: "High", Impact: "High", Status: constants.RiskStatusMitigated,
	}).Error)

	stats, err := statsRepo.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProjects)
	assert.Equal(t, int64(1), stats.ActiveProjects)
	assert.Equal(t, int64(1), stats.CompletedProjects)
	assert.Equal(t, int64(1), stats.AtRiskProjects)
	assert.Equal(t, float64(200000), stats.TotalBudget)
	assert.Equal(t, float64(50000), stats.TotalSpent)
	assert.InDelta(t, 25.0, stats.BudgetUtilizationPct, 0.001)
	assert.Equal(t, int64(3), stats.TotalRisks)
	assert.Equal(t, int64(1), stats.ActiveRisks)
	assert.Equal(t, int64(2), stats.CriticalRisks)
}

func TestStatsRepository_Dashboard_ZeroBudget(t *testing.T) {
	db := newTestDB(t)
	statsRepo := NewStatsRepository(db)

	stats, err := statsRepo.DashboardStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalBudget)
	// 总预算为0时利用率为0, 不做除法
	assert.Zero(t, stats.BudgetUtilizationPct)
}

func TestNewsRepository_Order(t *testing.T) {
	db := newTestDB(t)
	projectRepo := NewProjectRepository(db)
	newsRepo := NewNewsRepository(db)

	p := newProject("Newsy")
	require.NoError(t, projectRepo.Create(p))

	for _, date := range []string{"2025-01-01", "2025-03-01", "2025-02-01"} {
		require.NoError(t, newsRepo.Create(&model.NewsItem{
			ProjectID: p.ID, Date: date, Content: "wpis " + date, Category: "Info",
		}))
	}

	items, err := newsRepo.ListByProject(p.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "2025-03-01", items[0].Date)
	assert.Equal(t, "2025-01-01", items[2].Date)
}

func TestExportRepository_Snapshot(t *testing.T) {
	db := newTestDB(t)
	projectRepo := NewProjectRepository(db)
	exportRepo := NewExportRepository(db)

	p := newProject("Exportable")
	require.NoError(t, projectRepo.Create(p))
	require.NoError(t, db.Create(&model.NewsItem{ProjectID: p.ID, Date: "2025-01-01", Content: "c", Category: "Info"}).Error)
	require.NoError(t, db.Create(&model.Risk{ProjectID: p.ID, Title: "r", Description: "d",
		Probability: "Medium", Impact: "High", Status: "Active"}).Error)

	projects, err := exportRepo.Snapshot()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Len(t, projects[0].News, 1)
	assert.Len(t, projects[0].Risks, 1)
	assert.Equal(t, 6, projects[0].Risks[0].RiskScore)

	single, err := exportRepo.SnapshotProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Exportable", single.Name)
	assert.Len(t, single.News, 1)

	_, err = exportRepo.SnapshotProject(999)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeNotFound))
}
