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

type RiskService interface {
	Add(projectID int64, req *dto.AddRiskRequest) (*model.Risk, error)
	List(projectID int64, query *dto.RiskListQuery) ([]*model.Risk, error)
	Update(id int64, req *dto.AddRiskRequest) (*model.Risk, error)
	Delete(id int64) error
}

type riskService struct {
	riskRepo    repository.RiskRepository
	projectRepo repository.ProjectRepository
}

func NewRiskService(riskRepo repository.RiskRepository, projectRepo repository.ProjectRepository) RiskService {
	return &riskService{riskRepo: riskRepo, projectRepo: projectRepo}
}

func validateRiskFields(req *dto.AddRiskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return pkgErrors.New(pkgErrors.CodeValidationError, "风险标题不能为空")
	}
	if strings.TrimSpace(req.Description) == "" {
		return pkgErrors.New(pkgErrors.CodeValidationError, "风险描述不能为空")
	}
	if !constants.ValidEnum("risk_level", req.Probability) {
		return pkgErrors.New(pkgErrors.CodeValidationError, "非法的风险概率: "+req.Probability)
	}
	if !constants.ValidEnum("risk_level", req.Impact) {
		return pkgErrors.New(pkgErrors.CodeValidationError, "非法的风险影响: "+req.Impact)
	}
	if req.Status != "" && !constants.ValidEnum("risk_status", req.Status) {
		return pkgErrors.New(pkgErrors.CodeValidationError, "非法的风险状态: "+req.Status)
	}
	return nil
}

func (s *riskService) Add(projectID int64, req *dto.AddRiskRequest) (*model.Risk, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if err := validateRiskFields(req); err != nil {
		return nil, err
	}

	// 评分由存储层钩子计算, 此处不赋值
	risk := &model.Risk{
		ProjectID:      projectID,
		Title:          req.Title,
		Description:    req.Description,
		Probability:    req.Probability,
		Impact:         req.Impact,
		Status:         req.Status,
		MitigationPlan: req.MitigationPlan,
		Owner:          req.Owner,
		DueDate:        req.DueDate,
	}
	if risk.Status == "" {
		risk.Status = constants.RiskStatusActive
	}
	if err := s.riskRepo.Create(risk); err != nil {
		return nil, err
	}

	logger.Info("添加风险成功",
		zap.Int64("project_id", projectID), zap.Int64("id", risk.ID), zap.Int("score", risk.RiskScore))
	return risk, nil
}

func (s *riskService) List(projectID int64, query *dto.RiskListQuery) ([]*model.Risk, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if query.Status != "" && !constants.ValidEnum("risk_status", query.Status) {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "非法的风险状态: "+query.Status)
	}
	return s.riskRepo.ListByProject(projectID, query.Status)
}

// Update 整行替换, 评分随概率与影响同步重算
func (s *riskService) Update(id int64, req *dto.AddRiskRequest) (*model.Risk, error) {
	if err := validateRiskFields(req); err != nil {
		return nil, err
	}

	existing, err := s.riskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Probability = req.Probability
	existing.Impact = req.Impact
	existing.Status = req.Status
	existing.MitigationPlan = req.MitigationPlan
	existing.Owner = req.Owner
	existing.DueDate = req.DueDate
	if existing.Status == "" {
		existing.Status = constants.RiskStatusActive
	}

	if err := s.riskRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *riskService) Delete(id int64) error {
	return s.riskRepo.Delete(id)
}
