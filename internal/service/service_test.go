package service

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/config"
	"portfolio-dashboard/internal/pkg/database"
	"portfolio-dashboard/internal/pkg/logger"
	"portfolio-dashboard/internal/repository"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

func TestMain(m *testing.M) {
	if err := logger.Init(&config.LogConfig{Level: "error", Format: "console", Output: "stdout"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

func newProjectService(t *testing.T) (ProjectService, *gorm.DB) {
	db := newTestDB(t)
	return NewProjectService(repository.NewProjectRepository(db)), db
}

func strPtr(s string) *string { return &s }

func createReq(name string) *dto.CreateProjectRequest {
	return &dto.CreateProjectRequest{
		Name:        name,
		Description: strPtr("opis"),
		Manager:     strPtr("Jan Kowalski"),
		Contractor:  strPtr("Budimex"),
		BudgetPlan:  250000,
		Status:      constants.ProjectStatusInProgress,
		Priority:    constants.PriorityHigh,
		StartDate:   strPtr("2025-01-01"),
		EndDate:     strPtr("2025-12-31"),
		Progress:    25,
	}
}

func TestProjectService_CreateGetFidelity(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(createReq("Alpha"))
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
	assert.Equal(t, "opis", *got.Description)
	assert.Equal(t, "Jan Kowalski", *got.Manager)
	assert.Equal(t, "Budimex", *got.Contractor)
	assert.Equal(t, float64(250000), got.BudgetPlan)
	assert.Equal(t, constants.ProjectStatusInProgress, got.Status)
	assert.Equal(t, constants.PriorityHigh, got.Priority)
	assert.Equal(t, "2025-01-01", *got.StartDate)
	assert.Equal(t, 25, got.Progress)

	createdAt, err := time.Parse(time.RFC3339Nano, got.CreatedAt)
	require.NoError(t, err)
	updatedAt, err := time.Parse(time.RFC3339Nano, got.UpdatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, createdAt, updatedAt, time.Millisecond)
}

func TestProjectService_Create_Defaults(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(&dto.CreateProjectRequest{Name: "Bare"})
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectStatusPlanned, created.Status)
	assert.Equal(t, constants.PriorityMedium, created.Priority)
	assert.Nil(t, created.Description)
}

func TestProjectService_Create_Validation(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.Create(&dto.CreateProjectRequest{Name: "  "})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))

	_, err = svc.Create(&dto.CreateProjectRequest{Name: "X", Status: "Bogus"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))

	_, err = svc.Create(&dto.CreateProjectRequest{Name: "X", Progress: 150})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))
}

func TestProjectService_DuplicateName(t *testing.T) {
	svc, db := newProjectService(t)

	_, err := svc.Create(createReq("Alpha"))
	require.NoError(t, err)

	_, err = svc.Create(createReq("Alpha"))
	require.Error(t, err)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeConflict))

	// 失败的创建不留痕迹
	var count int64
	require.NoError(t, db.Table("projects").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProjectService_Update_FullRowReplace(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(createReq("Alpha"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// 未携带的可选字段被清空
	updated, err := svc.Update(&dto.UpdateProjectRequest{
		ID: created.ID,
		CreateProjectRequest: dto.CreateProjectRequest{
			Name:       "Alpha v2",
			BudgetPlan: 300000,
			Status:     constants.ProjectStatusAtRisk,
			Priority:   constants.PriorityCritical,
			Progress:   40,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alpha v2", updated.Name)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.Manager)
	assert.Nil(t, updated.StartDate)
	assert.Equal(t, constants.ProjectStatusAtRisk, updated.Status)

	// 更新时间严格递增
	createdAt, err := time.Parse(time.RFC3339Nano, updated.CreatedAt)
	require.NoError(t, err)
	updatedAt, err := time.Parse(time.RFC3339Nano, updated.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, updatedAt.After(createdAt), "updated_at=%v created_at=%v", updatedAt, createdAt)
}

func TestProjectService_Update_NameCollision(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.Create(createReq("Alpha"))
	require.NoError(t, err)
	beta, err := svc.Create(createReq("Beta"))
	require.NoError(t, err)

	_, err = svc.Update(&dto.UpdateProjectRequest{
		ID:                   beta.ID,
		CreateProjectRequest: *createReq("Alpha"),
	})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeConflict))

	// 改回自己的名字不算冲突
	_, err = svc.Update(&dto.UpdateProjectRequest{
		ID:                   beta.ID,
		CreateProjectRequest: *createReq("Beta"),
	})
	assert.NoError(t, err)
}

func TestProjectService_Delete_Twice(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(createReq("Doomed"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	// 重复删除可观察为未找到
	err = svc.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeNotFound))
}

func TestChildServices_ParentNotFound(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)

	newsSvc := NewNewsService(repository.NewNewsRepository(db), projectRepo)
	_, err := newsSvc.Add(999, &dto.AddNewsRequest{Date: "2025-01-01", Content: "c"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeParentNotFound))

	milestoneSvc := NewMilestoneService(repository.NewMilestoneRepository(db), projectRepo)
	_, err = milestoneSvc.Add(999, &dto.AddMilestoneRequest{Title: "m"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeParentNotFound))

	budgetSvc := NewBudgetItemService(repository.NewBudgetItemRepository(db), projectRepo)
	_, err = budgetSvc.Add(999, &dto.AddBudgetItemRequest{Name: "b", Category: "Other"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeParentNotFound))

	riskSvc := NewRiskService(repository.NewRiskRepository(db), projectRepo)
	_, err = riskSvc.Add(999, &dto.AddRiskRequest{Title: "r", Description: "d", Probability: "Low", Impact: "Low"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeParentNotFound))

	memberSvc := NewTeamMemberService(repository.NewTeamMemberRepository(db), projectRepo)
	_, err = memberSvc.Add(999, &dto.AddTeamMemberRequest{Name: "n", Role: "r", Allocation: 50})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeParentNotFound))
}

// 必填字段校验在服务层完成, 绕过HTTP绑定的调用方同样被拒绝
func TestChildServices_MandatoryFields(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	projectSvc := NewProjectService(projectRepo)
	project, err := projectSvc.Create(createReq("Metro"))
	require.NoError(t, err)

	newsSvc := NewNewsService(repository.NewNewsRepository(db), projectRepo)
	_, err = newsSvc.Add(project.ID, &dto.AddNewsRequest{Date: "", Content: "treść"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))
	_, err = newsSvc.Add(project.ID, &dto.AddNewsRequest{Date: "  ", Content: "treść"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))

	var newsCount int64
	require.NoError(t, db.Model(&model.NewsItem{}).Count(&newsCount).Error)
	assert.Zero(t, newsCount)

	riskSvc := NewRiskService(repository.NewRiskRepository(db), projectRepo)
	_, err = riskSvc.Add(project.ID, &dto.AddRiskRequest{
		Title: "r", Description: "", Probability: "Low", Impact: "Low",
	})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))

	var riskCount int64
	require.NoError(t, db.Model(&model.Risk{}).Count(&riskCount).Error)
	assert.Zero(t, riskCount)

	_, err = newsSvc.Add(project.ID, &dto.AddNewsRequest{Date: "2025-02-01", Content: "treść"})
	require.NoError(t, err)
}

func TestRiskService_HighHighActive(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	projectSvc := NewProjectService(projectRepo)
	riskSvc := NewRiskService(repository.NewRiskRepository(db), projectRepo)
	statsSvc := NewStatsService(repository.NewStatsRepository(db))

	project, err := projectSvc.Create(createReq("Risky"))
	require.NoError(t, err)

	risk, err := riskSvc.Add(project.ID, &dto.AddRiskRequest{
		Title: "Groundwater", Description: "wysoki poziom wód",
		Probability: constants.RiskLevelHigh, Impact: constants.RiskLevelHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RiskStatusActive, risk.Status)
	assert.Equal(t, 9, risk.RiskScore)

	active, err := riskSvc.List(project.ID, &dto.RiskListQuery{Status: constants.RiskStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 9, active[0].RiskScore)

	stats, err := statsSvc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.CriticalRisks)
}

func TestRiskService_UpdateRecalculatesScore(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	projectSvc := NewProjectService(projectRepo)
	riskSvc := NewRiskService(repository.NewRiskRepository(db), projectRepo)

	project, err := projectSvc.Create(createReq("Risky"))
	require.NoError(t, err)

	risk, err := riskSvc.Add(project.ID, &dto.AddRiskRequest{
		Title: "r", Description: "d", Probability: "Low", Impact: "Medium",
	})
	require.NoError(t, err)
	require.Equal(t, 2, risk.RiskScore)

	updated, err := riskSvc.Update(risk.ID, &dto.AddRiskRequest{
		Title: "r", Description: "d", Probability: "Medium", Impact: "High",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.RiskScore)
}

func TestBudgetItemService_DefaultsAndTotals(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	projectSvc := NewProjectService(projectRepo)
	budgetSvc := NewBudgetItemService(repository.NewBudgetItemRepository(db), projectRepo)

	project, err := projectSvc.Create(createReq("Budgeted"))
	require.NoError(t, err)

	item, err := budgetSvc.Add(project.ID, &dto.AddBudgetItemRequest{
		Name: "Szyny", Category: constants.BudgetCategoryMaterials,
		Planned: 50000, Actual: 40000, Forecast: 45000,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultCurrency, item.Currency)

	_, err = budgetSvc.Add(project.ID, &dto.AddBudgetItemRequest{
		Name: "Nadzór", Category: constants.BudgetCategoryServices,
		Planned: 30000, Actual: 20000, Forecast: 25000,
	})
	require.NoError(t, err)

	totals, err := budgetSvc.Totals(project.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(60000), totals.Actual)
	assert.Equal(t, float64(80000), totals.Planned)

	// 无条目项目的汇总为0
	empty, err := projectSvc.Create(createReq("Empty"))
	require.NoError(t, err)
	totals, err = budgetSvc.Totals(empty.ID)
	require.NoError(t, err)
	assert.Zero(t, totals.Actual)
}

func TestMilestoneService_OpaqueDependencies(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	projectSvc := NewProjectService(projectRepo)
	milestoneSvc := NewMilestoneService(repository.NewMilestoneRepository(db), projectRepo)

	project, err := projectSvc.Create(createReq("Phased"))
	require.NoError(t, err)

	// 依赖不校验存在性, 原样存取; 日期倒挂也不拦截
	m, err := milestoneSvc.Add(project.ID, &dto.AddMilestoneRequest{
		Title:        "Phase 1",
		StartDate:    strPtr("2025-06-01"),
		EndDate:      strPtr("2025-01-01"),
		Dependencies: []int64{42, 7},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.MilestoneStatusPlanned, m.Status)

	list, err := milestoneSvc.List(project.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []int64{42, 7}, []int64(list[0].Dependencies))
}
