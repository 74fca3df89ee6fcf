package repository

import (
	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type ExportRepository interface {
	Snapshot() ([]*model.Project, error)
	SnapshotProject(id int64) (*model.Project, error)
}

type exportRepository struct {
	db *gorm.DB
}

func NewExportRepository(db *gorm.DB) ExportRepository {
	return &exportRepository{db: db}
}

// Snapshot 单事务内取回全部项目及从属行, 导出结果来自同一时间点
func (r *exportRepository) Snapshot() ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Preload("News").
			Preload("Milestones").
			Preload("BudgetItems").
			Preload("Risks").
			Preload("TeamMembers").
			Order("id ASC").
			Find(&projects).Error
	})
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "读取导出快照失败", err)
	}
	return projects, nil
}

// SnapshotProject 单项目快照, 含全部从属行
func (r *exportRepository) SnapshotProject(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.
		Preload("News").
		Preload("Milestones").
		Preload("BudgetItems").
		Preload("Risks").
		Preload("TeamMembers").
		First(&project, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "读取导出快照失败", err)
	}
	return &project, nil
}
