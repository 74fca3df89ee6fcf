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

type MilestoneService interface {
	Add(projectID int64, req *dto.AddMilestoneRequest) (*model.Milestone, error)
	List(projectID int64) ([]*model.Milestone, error)
	Update(id int64, req *dto.AddMilestoneRequest) (*model.Milestone, error)
	Delete(id int64) error
}

type milestoneService struct {
	milestoneRepo repository.MilestoneRepository
	projectRepo   repository.ProjectRepository
}

func NewMilestoneService(milestoneRepo repository.MilestoneRepository, projectRepo repository.ProjectRepository) MilestoneService {
	return &milestoneService{milestoneRepo: milestoneRepo, projectRepo: projectRepo}
}

func validateMilestoneFields(req *dto.AddMilestoneRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return pkgErrors.New(pkgErrors.CodeValidationError, "里程碑标题不能为空")
	}
	if req.Status != "" && !constants.ValidEnum("milestone_status", req.Status) {
		return pkgErrors.New(pkgErrors.CodeValidationError, "非法的里程碑状态: "+req.Status)
	}
	if req.Progress < 0 || req.Progress > 100 {
		return pkgErrors.New(pkgErrors.CodeValidationError, "进度必须在0到100之间")
	}
	// 日期顺序与依赖存在性刻意不校验
	return nil
}

func (s *milestoneService) Add(projectID int64, req *dto.AddMilestoneRequest) (*model.Milestone, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if err := validateMilestoneFields(req); err != nil {
		return nil, err
	}

	milestone := &model.Milestone{
		ProjectID:    projectID,
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       req.Status,
		Progress:     req.Progress,
		Dependencies: req.Dependencies,
	}
	if milestone.Status == "" {
		milestone.Status = constants.MilestoneStatusPlanned
	}
	if err := s.milestoneRepo.Create(milestone); err != nil {
		return nil, err
	}

	logger.Info("添加里程碑成功", zap.Int64("project_id", projectID), zap.Int64("id", milestone.ID))
	return milestone, nil
}

func (s *milestoneService) List(projectID int64) ([]*model.Milestone, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	return s.milestoneRepo.ListByProject(projectID)
}

// Update 整行替换, 不改所属项目
func (s *milestoneService) Update(id int64, req *dto.AddMilestoneRequest) (*model.Milestone, error) {
	if err := validateMilestoneFields(req); err != nil {
		return nil, err
	}

	existing, err := s.milestoneRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate
	existing.Status = req.Status
	existing.Progress = req.Progress
	existing.Dependencies = req.Dependencies
	if existing.Status == "" {
		existing.Status = constants.MilestoneStatusPlanned
	}

	if err := s.milestoneRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *milestoneService) Delete(id int64) error {
	return s.milestoneRepo.Delete(id)
}
