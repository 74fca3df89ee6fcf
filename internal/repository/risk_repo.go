package repository

import (
	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type RiskRepository interface {
	Create(risk *model.Risk) error
	FindByID(id int64) (*model.Risk, error)
	ListByProject(projectID int64, status string) ([]*model.Risk, error)
	Update(risk *model.Risk) error
	Delete(id int64) error
}

type riskRepository struct {
	db *gorm.DB
}

func NewRiskRepository(db *gorm.DB) RiskRepository {
	return &riskRepository{db: db}
}

func (r *riskRepository) Create(risk *model.Risk) error {
	if err := r.db.Create(risk).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建风险失败", err)
	}
	return nil
}

func (r *riskRepository) FindByID(id int64) (*model.Risk, error) {
	var risk model.Risk
	err := r.db.First(&risk, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询风险失败", err)
	}
	return &risk, nil
}

// ListByProject status为空时返回全部状态, 评分高者在前
func (r *riskRepository) ListByProject(projectID int64, status string) ([]*model.Risk, error) {
	query := r.db.Where("project_id = ?", projectID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var risks []*model.Risk
	if err := query.Order("risk_score DESC, id ASC").Find(&risks).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询风险列表失败", err)
	}
	return risks, nil
}

func (r *riskRepository) Update(risk *model.Risk) error {
	if err := r.db.Save(risk).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新风险失败", err)
	}
	return nil
}

func (r *riskRepository) Delete(id int64) error {
	result := r.db.Delete(&model.Risk{}, id)
	if result.Error != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除风险失败", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgErrors.ErrNotFound
	}
	return nil
}
