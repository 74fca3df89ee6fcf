package repository

import (
	"strings"

	"gorm.io/gorm"

	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int64) (*model.Project, error)
	FindByName(name string) (*model.Project, error)
	FindWithStats(id int64) (*model.ProjectWithStats, error)
	List(filter ProjectFilter) ([]*model.ProjectWithStats, error)
	Update(project *model.Project) error
	Delete(id int64) error
	Count() (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目失败", err)
	}
	return &project, nil
}

func (r *projectRepository) FindByName(name string) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("name = ?", name).First(&project).Error
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.ErrNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目失败", err)
	}
	return &project, nil
}

// statsSelect 项目行与聚合子查询一次性取回, 并发写不会被观察为半成品聚合
const statsSelect = `projects.*,
	COALESCE(bi.actual_sum, 0)   AS budget_actual,
	COALESCE(bi.planned_sum, 0)  AS budget_planned,
	COALESCE(bi.forecast_sum, 0) AS budget_forecast,
	COALESCE(rk.active_count, 0) AS active_risks,
	COALESCE(ms.done_count, 0)   AS milestones_done,
	COALESCE(ms.total_count, 0)  AS milestones_total,
	COALESCE(tm.member_count, 0) AS team_size,
	COALESCE(tm.mean_alloc, 0)   AS mean_allocation`

func (r *projectRepository) withStats() *gorm.DB {
	return r.db.Table(model.ProjectTableName).
		Select(statsSelect).
		Joins(`LEFT JOIN (SELECT project_id, SUM(actual) actual_sum, SUM(planned) planned_sum, SUM(forecast) forecast_sum
			FROM budget_items GROUP BY project_id) bi ON bi.project_id = projects.id`).
		Joins(`LEFT JOIN (SELECT project_id, COUNT(*) active_count
			FROM risks WHERE status = 'Active' GROUP BY project_id) rk ON rk.project_id = projects.id`).
		Joins(`LEFT JOIN (SELECT project_id, SUM(CASE WHEN status = 'Done' THEN 1 ELSE 0 END) done_count, COUNT(*) total_count
			FROM milestones GROUP BY project_id) ms ON ms.project_id = projects.id`).
		Joins(`LEFT JOIN (SELECT project_id, COUNT(*) member_count, AVG(allocation) mean_alloc
			FROM team_members GROUP BY project_id) tm ON tm.project_id = projects.id`)
}

func (r *projectRepository) FindWithStats(id int64) (*model.ProjectWithStats, error) {
	var row model.ProjectWithStats
	result := r.withStats().Where("projects.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目失败", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, pkgErrors.ErrNotFound
	}
	return &row, nil
}

func (r *projectRepository) List(filter ProjectFilter) ([]*model.ProjectWithStats, error) {
	query := r.withStats()

	// 过滤条件为合取
	if filter.Status != "" {
		query = query.Where("projects.status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(projects.name) LIKE ? OR LOWER(COALESCE(projects.description, '')) LIKE ? OR LOWER(COALESCE(projects.manager, '')) LIKE ?",
			like, like, like)
	}

	query = query.Order(orderClause(filter.Sort))

	var rows []*model.ProjectWithStats
	if err := query.Scan(&rows).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目列表失败", err)
	}
	// 无匹配返回空序列而非错误
	return rows, nil
}

// orderClause 排序键转SQL, 优先级为自定义权重排序
func orderClause(sort string) string {
	switch sort {
	case constants.SortNameAsc:
		return "projects.name ASC"
	case constants.SortNameDesc:
		return "projects.name DESC"
	case constants.SortBudgetAsc:
		return "projects.budget_plan ASC"
	case constants.SortBudgetDesc:
		return "projects.budget_plan DESC"
	case constants.SortProgressAsc:
		return "projects.progress ASC"
	case constants.SortProgressDesc:
		return "projects.progress DESC"
	case constants.SortPriorityDesc:
		return `CASE projects.priority
			WHEN 'Critical' THEN 4
			WHEN 'High' THEN 3
			WHEN 'Medium' THEN 2
			WHEN 'Low' THEN 1
			ELSE 0 END DESC`
	default:
		return "projects.created_at DESC"
	}
}

func (r *projectRepository) Update(project *model.Project) error {
	// Save为整行替换
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目失败", err)
	}
	return nil
}

// Delete 单事务内级联删除项目与全部从属行, 要么全删要么全不删
func (r *projectRepository) Delete(id int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.NewsItem{}, &model.Milestone{}, &model.BudgetItem{}, &model.Risk{}, &model.TeamMember{},
		} {
			if err := tx.Where("project_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Project{}, id).Error
	})
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目失败", err)
	}
	return nil
}

func (r *projectRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Project{}).Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计项目数量失败", err)
	}
	return count, nil
}
