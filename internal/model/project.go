package model

const ProjectTableName = "projects"

// Project 项目模型
// updated_at在sqlite下由数据库触发器刷新, 任何写路径都无法绕过
type Project struct {
	BaseModel
	Name        string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Manager     *string `gorm:"size:100" json:"manager"`
	Contractor  *string `gorm:"size:100" json:"contractor"`
	BudgetPlan  float64 `gorm:"not null;default:0;check:budget_plan >= 0" json:"budget_plan"`
	Status      string  `gorm:"size:20;not null;default:Planned;index" json:"status"`
	Priority    string  `gorm:"size:20;not null;default:Medium" json:"priority"`
	StartDate   *string `gorm:"size:10" json:"start_date"` // ISO日期, 可缺省
	EndDate     *string `gorm:"size:10" json:"end_date"`
	Progress    int     `gorm:"not null;default:0;check:progress >= 0 AND progress <= 100" json:"progress"`

	// 级联删除: 删除项目时所有从属行一并删除
	News        []NewsItem   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"news,omitempty"`
	Milestones  []Milestone  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
	BudgetItems []BudgetItem `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"budget_items,omitempty"`
	Risks       []Risk       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"risks,omitempty"`
	TeamMembers []TeamMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"team_members,omitempty"`
}

func (Project) TableName() string {
	return ProjectTableName
}

// ProjectWithStats 项目行加聚合值, 由单条查询产出
type ProjectWithStats struct {
	Project
	BudgetActual    float64 `json:"budget_actual"`
	BudgetPlanned   float64 `json:"budget_planned"`
	BudgetForecast  float64 `json:"budget_forecast"`
	ActiveRisks     int64   `json:"active_risks"`
	MilestonesDone  int64   `json:"milestones_done"`
	MilestonesTotal int64   `json:"milestones_total"`
	TeamSize        int64   `json:"team_size"`
	MeanAllocation  float64 `json:"mean_allocation"`
}
