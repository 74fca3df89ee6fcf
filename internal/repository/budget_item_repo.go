package repository

import (
	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

// BudgetTotals 单项目预算汇总
type BudgetTotals struct {
	Planned  float64 `json:"planned"`
	Actual   float64 `json:"actual"`
	Forecast float64 `json:"forecast"`
}

type BudgetItemRepository interface {
	Create(item *model.BudgetItem) error
	FindByID(id int64) (*model.BudgetItem, error)
	ListByProject(projectID int64) ([]*model.BudgetItem, error)
	TotalsByProject(projectID int64) (*BudgetTotals, error)
	Delete(id int64) error
}

type budgetItemRepository struct {
	db *gorm.DB
}

func NewBudgetItemRepository(db *gorm.DB) BudgetItemRepository {
	return &budgetItemRepository{db: db}
}

func (r *budgetItemRepository) Create(item *model.BudgetItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建预算条目失败", err)
	}
	return nil
}

func (r *budgetItemRepository) FindByID(id int64) (*model.BudgetItem, error) {
	var item model.BudgetItem
	err := r.db.First(&item, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询预算条目失败", err)
	}
	return &item, nil
}

func (r *budgetItemRepository) ListByProject(projectID int64) ([]*model.BudgetItem, error) {
	var items []*model.BudgetItem
	err := r.db.Where("project_id = ?", projectID).
		Order("category ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询预算条目列表失败", err)
	}
	return items, nil
}

// TotalsByProject 无条目时各项汇总为0
func (r *budgetItemRepository) TotalsByProject(projectID int64) (*BudgetTotals, error) {
	var totals BudgetTotals
	err := r.db.Model(&model.BudgetItem{}).
		Select("COALESCE(SUM(planned), 0) planned, COALESCE(SUM(actual), 0) actual, COALESCE(SUM(forecast), 0) forecast").
		Where("project_id = ?", projectID).
		Scan(&totals).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计项目预算失败", err)
	}
	return &totals, nil
}

func (r *budgetItemRepository) Delete(id int64) error {
	result := r.db.Delete(&model.BudgetItem{}, id)
	if result.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除预算条目失败", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgErrors.ErrNotFound
	}
	return nil
}
