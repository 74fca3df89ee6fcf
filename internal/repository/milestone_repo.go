package repository

import (
	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type MilestoneRepository interface {
	Create(milestone *model.Milestone) error
	FindByID(id int64) (*model.Milestone, error)
	ListByProject(projectID int64) ([]*model.Milestone, error)
	Update(milestone *model.Milestone) error
	Delete(id int64) error
}

type milestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) Create(milestone *model.Milestone) error {
	if err := r.db.Create(milestone).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建里程碑失败", err)
	}
	return nil
}

func (r *milestoneRepository) FindByID(id int64) (*model.Milestone, error) {
	var milestone model.Milestone
	err := r.db.First(&milestone, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询里程碑失败", err)
	}
	return &milestone, nil
}

// ListByProject 按开始日期升序, 无日期的排在末尾
func (r *milestoneRepository) ListByProject(projectID int64) ([]*model.Milestone, error) {
	var milestones []*model.Milestone
	err := r.db.Where("project_id = ?", projectID).
		Order("start_date IS NULL, start_date ASC, id ASC").
		Find(&milestones).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询里程碑列表失败", err)
	}
	return milestones, nil
}

func (r *milestoneRepository) Update(milestone *model.Milestone) error {
	if err := r.db.Save(milestone).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新里程碑失败", err)
	}
	return nil
}

func (r *milestoneRepository) Delete(id int64) error {
	result := r.db.Delete(&model.Milestone{}, id)
	if result.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除里程碑失败", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgErrors.ErrNotFound
	}
	return nil
}
