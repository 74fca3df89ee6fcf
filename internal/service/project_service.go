package service

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/logger"
	"portfolio-dashboard/internal/repository"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type ProjectService interface {
	Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Get(id int64) (*dto.ProjectResponse, error)
	List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, error)
	Update(req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(id int64) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

// validateProjectFields 枚举与范围校验
// 视图引擎动作不经过HTTP绑定层, 服务层必须自行校验
func validateProjectFields(req *dto.CreateProjectRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return pkgErrors.New(pkgErrors.CodeValidationError, "项目名称不能为空")
	}
	if req.Status != "" && !constants.ValidEnum("project_status", req.Status) {
		return pkgErrors.New(pkgErrors.CodeValidationError, "非法的项目状态: "+req.Status)
	}
	if req.Priority != "" && !constants.ValidEnum("priority", req.Priority) {
		return pkgErrors.New(pkgErrors.CodeValidationError, "非法的项目优先级: "+req.Priority)
	}
	if req.BudgetPlan < 0 {
		return pkgErrors.New(pkgErrors.CodeValidationError, "预算不能为负数")
	}
	if req.Progress < 0 || req.Progress > 100 {
		return pkgErrors.New(pkgErrors.CodeValidationError, "进度必须在0到100之间")
	}
	return nil
}

func (s *projectService) Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validateProjectFields(req); err != nil {
		return nil, err
	}

	// 名称唯一性检查, 数据库唯一索引兜底
	if _, err := s.projectRepo.FindByName(req.Name); err == nil {
		return nil, pkgErrors.ErrDuplicateName
	} else if !pkgErrors.IsCode(err, pkgErrors.CodeNotFound) {
		return nil, err
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Manager:     req.Manager,
		Contractor:  req.Contractor,
		BudgetPlan:  req.BudgetPlan,
		Status:      lo.Ternary(req.Status != "", req.Status, constants.ProjectStatusPlanned),
		Priority:    lo.Ternary(req.Priority != "", req.Priority, constants.PriorityMedium),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Progress:    req.Progress,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	logger.Info("创建项目成功", zap.Int64("id", project.ID), zap.String("name", project.Name))
	return s.Get(project.ID)
}

func (s *projectService) Get(id int64) (*dto.ProjectResponse, error) {
	row, err := s.projectRepo.FindWithStats(id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(row), nil
}

func (s *projectService) List(query *dto.ProjectListQuery) ([]*dto.ProjectResponse, error) {
	if query.Status != "" && !constants.ValidEnum("project_status", query.Status) {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "非法的项目状态: "+query.Status)
	}
	if query.Sort != "" && !constants.ValidEnum("sort_key", query.Sort) {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "非法的排序键: "+query.Sort)
	}

	rows, err := s.projectRepo.List(repository.ProjectFilter{
		Status: query.Status,
		Search: query.Search,
		Sort:   query.Sort,
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *model.ProjectWithStats, _ int) *dto.ProjectResponse {
		return toProjectResponse(row)
	}), nil
}

// Update 整行替换: 请求未携带的可选字段被置空
func (s *projectService) Update(req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validateProjectFields(&req.CreateProjectRequest); err != nil {
		return nil, err
	}

	existing, err := s.projectRepo.FindByID(req.ID)
	if err != nil {
		return nil, err
	}

	// 名称可改, 但不能撞上其他项目
	if other, err := s.projectRepo.FindByName(req.Name); err == nil && other.ID != existing.ID {
		return nil, pkgErrors.ErrDuplicateName
	} else if err != nil && !pkgErrors.IsCode(err, pkgErrors.CodeNotFound) {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Manager = req.Manager
	existing.Contractor = req.Contractor
	existing.BudgetPlan = req.BudgetPlan
	existing.Status = lo.Ternary(req.Status != "", req.Status, constants.ProjectStatusPlanned)
	existing.Priority = lo.Ternary(req.Priority != "", req.Priority, constants.PriorityMedium)
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate
	existing.Progress = req.Progress

	if err := s.projectRepo.Update(existing); err != nil {
		return nil, err
	}

	logger.Info("更新项目成功", zap.Int64("id", existing.ID), zap.String("name", existing.Name))
	return s.Get(existing.ID)
}

// Delete 重复删除返回未找到, 幂等但可观察
func (s *projectService) Delete(id int64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}
	logger.Info("删除项目成功", zap.Int64("id", id))
	return nil
}

func toProjectResponse(row *model.ProjectWithStats) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Manager:         row.Manager,
		Contractor:      row.Contractor,
		BudgetPlan:      row.BudgetPlan,
		Status:          row.Status,
		Priority:        row.Priority,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		Progress:        row.Progress,
		CreatedAt:       row.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       row.UpdatedAt.Format(time.RFC3339Nano),
		BudgetActual:    row.BudgetActual,
		BudgetPlanned:   row.BudgetPlanned,
		BudgetForecast:  row.BudgetForecast,
		ActiveRisks:     row.ActiveRisks,
		MilestonesDone:  row.MilestonesDone,
		MilestonesTotal: row.MilestonesTotal,
		TeamSize:        row.TeamSize,
		MeanAllocation:  row.MeanAllocation,
	}
}
