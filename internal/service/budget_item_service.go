package service

import (
	"strings"

	"go.uber.org/zap"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/logger"
	"portfolio-dashboard/internal/repository"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type BudgetItemService interface {
	Add(projectID int64, req *dto.AddBudgetItemRequest) (*model.BudgetItem, error)
	List(projectID int64) ([]*model.BudgetItem, error)
	Totals(projectID int64) (*repository.BudgetTotals, error)
	Delete(id int64) error
}

type budgetItemService struct {
	budgetRepo  repository.BudgetItemRepository
	projectRepo repository.ProjectRepository
}

func NewBudgetItemService(budgetRepo repository.BudgetItemRepository, projectRepo repository.ProjectRepository) BudgetItemService {
	return &budgetItemService{budgetRepo: budgetRepo, projectRepo: projectRepo}
}

func (s *budgetItemService) Add(projectID int64, req *dto.AddBudgetItemRequest) (*model.BudgetItem, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "预算条目名称不能为空")
	}
	if !constants.ValidEnum("budget_category", req.Category) {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "非法的预算分类: "+req.Category)
	}
	if req.Planned < 0 || req.Actual < 0 || req.Forecast < 0 {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "预算金额不能为负数")
	}

	item := &model.BudgetItem{
		ProjectID:    projectID,
		Name:         req.Name,
		Category:     req.Category,
		Planned:      req.Planned,
		Actual:       req.Actual,
		Forecast:     req.Forecast,
		Currency:     req.Currency,
		DateIncurred: req.DateIncurred,
		Description:  req.Description,
	}
	if item.Currency == "" {
		item.Currency = constants.DefaultCurrency
	}
	if err := s.budgetRepo.Create(item); err != nil {
		return nil, err
	}

	logger.Info("添加预算条目成功", zap.Int64("project_id", projectID), zap.Int64("id", item.ID))
	return item, nil
}

func (s *budgetItemService) List(projectID int64) ([]*model.BudgetItem, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	return s.budgetRepo.ListByProject(projectID)
}

func (s *budgetItemService) Totals(projectID int64) (*repository.BudgetTotals, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	return s.budgetRepo.TotalsByProject(projectID)
}

func (s *budgetItemService) Delete(id int64) error {
	return s.budgetRepo.Delete(id)
}
