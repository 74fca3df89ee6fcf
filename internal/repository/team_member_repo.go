package repository

import (
	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type TeamMemberRepository interface {
	Create(member *model.TeamMember) error
	FindByID(id int64) (*model.TeamMember, error)
	ListByProject(projectID int64) ([]*model.TeamMember, error)
	Delete(id int64) error
}

type teamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(member *model.TeamMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建团队成员失败", err)
	}
	return nil
}

func (r *teamMemberRepository) FindByID(id int64) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.First(&member, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队成员失败", err)
	}
	return &member, nil
}

func (r *teamMemberRepository) ListByProject(projectID int64) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	err := r.db.Where("project_id = ?", projectID).
		Order("name ASC, id ASC").
		Find(&members).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询团队成员列表失败", err)
	}
	return members, nil
}

func (r *teamMemberRepository) Delete(id int64) error {
	result := r.db.Delete(&model.TeamMember{}, id)
	if result.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除团队成员失败", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgErrors.ErrNotFound
	}
	return nil
}
