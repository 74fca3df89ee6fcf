package dto

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
	Manager     *string `json:"manager" binding:"omitempty,max=100"`
	Contractor  *string `json:"contractor" binding:"omitempty,max=100"`
	BudgetPlan  float64 `json:"budget_plan" binding:"gte=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=Planned InProgress Completed AtRisk Paused"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Progress    int     `json:"progress" binding:"gte=0,lte=100"`
}

// UpdateProjectRequest 更新项目请求
// 整行替换语义: 未提供的可选字段会被清空, 局部编辑需读后写
type UpdateProjectRequest struct {
	ID int64 `json:"id" binding:"required"`
	CreateProjectRequest
}

// ProjectListQuery 项目列表查询参数
type ProjectListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=Planned InProgress Completed AtRisk Paused"`
	Search string `form:"search"`
	Sort   string `form:"sort" binding:"omitempty,oneof=name_asc name_desc budget_asc budget_desc progress_asc progress_desc priority_desc created_desc"`
}

// GetProjectRequest 获取项目详情请求
type GetProjectRequest struct {
	ID int64 `form:"id" binding:"required"`
}

// ProjectResponse 项目响应, 含单次快照内算出的聚合值
type ProjectResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Manager         *string `json:"manager"`
	Contractor      *string `json:"contractor"`
	BudgetPlan      float64 `json:"budget_plan"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	Progress        int     `json:"progress"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	BudgetActual    float64 `json:"budget_actual"`
	BudgetPlanned   float64 `json:"budget_planned"`
	BudgetForecast  float64 `json:"budget_forecast"`
	ActiveRisks     int64   `json:"active_risks"`
	MilestonesDone  int64   `json:"milestones_done"`
	MilestonesTotal int64   `json:"milestones_total"`
	TeamSize        int64   `json:"team_size"`
	MeanAllocation  float64 `json:"mean_allocation"`
}
