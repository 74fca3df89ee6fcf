package service

import (
	"strings"

	"go.uber.org/zap"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/pkg/logger"
	"portfolio-dashboard/internal/repository"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type TeamMemberService interface {
	Add(projectID int64, req *dto.AddTeamMemberRequest) (*model.TeamMember, error)
	List(projectID int64) ([]*model.TeamMember, error)
	Delete(id int64) error
}

type teamMemberService struct {
	memberRepo  repository.TeamMemberRepository
	projectRepo repository.ProjectRepository
}

func NewTeamMemberService(memberRepo repository.TeamMemberRepository, projectRepo repository.ProjectRepository) TeamMemberService {
	return &teamMemberService{memberRepo: memberRepo, projectRepo: projectRepo}
}

func (s *teamMemberService) Add(projectID int64, req *dto.AddTeamMemberRequest) (*model.TeamMember, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "成员姓名不能为空")
	}
	if strings.TrimSpace(req.Role) == "" {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "成员角色不能为空")
	}
	if req.Allocation < 0 || req.Allocation > 100 {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "投入比例必须在0到100之间")
	}

	member := &model.TeamMember{
		ProjectID:  projectID,
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
		Allocation: req.Allocation,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, err
	}

	logger.Info("添加团队成员成功", zap.Int64("project_id", projectID), zap.Int64("id", member.ID))
	return member, nil
}

func (s *teamMemberService) List(projectID int64) ([]*model.TeamMember, error) {
	if err := requireProject(s.projectRepo, projectID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByProject(projectID)
}

func (s *teamMemberService) Delete(id int64) error {
	return s.memberRepo.Delete(id)
}
