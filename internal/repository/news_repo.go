package repository

import (
	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type NewsRepository interface {
	Create(item *model.NewsItem) error
	FindByID(id int64) (*model.NewsItem, error)
	ListByProject(projectID int64) ([]*model.NewsItem, error)
	Delete(id int64) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(item *model.NewsItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目动态失败", err)
	}
	return nil
}

func (r *newsRepository) FindByID(id int64) (*model.NewsItem, error) {
	var item model.NewsItem
	err := r.db.First(&item, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目动态失败", err)
	}
	return &item, nil
}

// ListByProject 按日期倒序, 同日按插入顺序倒序
func (r *newsRepository) ListByProject(projectID int64) ([]*model.NewsItem, error) {
	var items []*model.NewsItem
	err := r.db.Where("project_id = ?", projectID).
		Order("date DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目动态列表失败", err)
	}
	return items, nil
}

func (r *newsRepository) Delete(id int64) error {
	result := r.db.Delete(&model.NewsItem{}, id)
	if result.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目动态失败", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgErrors.ErrNotFound
	}
	return nil
}
