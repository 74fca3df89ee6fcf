package dto

// AddNewsRequest 添加项目动态请求
type AddNewsRequest struct {
	Date     string  `json:"date" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Category string  `json:"category" binding:"omitempty,oneof=Info Warning Success Problem"`
	Author   *string `json:"author" binding:"omitempty,max=100"`
}

// AddMilestoneRequest 添加里程碑请求
// 日期顺序不做校验, 依赖列表仅作不透明数据保存
type AddMilestoneRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Description  *string `json:"description"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Status       string  `json:"status" binding:"omitempty,oneof=Planned InProgress Done Delayed"`
	Progress     int     `json:"progress" binding:"gte=0,lte=100"`
	Dependencies []int64 `json:"dependencies"`
}

// AddBudgetItemRequest 添加预算条目请求
type AddBudgetItemRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Category     string  `json:"category" binding:"required,oneof=Materials Resources Services Licenses Other"`
	Planned      float64 `json:"planned" binding:"gte=0"`
	Actual       float64 `json:"actual" binding:"gte=0"`
	Forecast     float64 `json:"forecast" binding:"gte=0"`
	Currency     string  `json:"currency" binding:"omitempty,len=3"`
	DateIncurred *string `json:"date_incurred"`
	Description  *string `json:"description"`
}

// AddRiskRequest 添加风险请求
type AddRiskRequest struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Description    string  `json:"description" binding:"required"`
	Probability    string  `json:"probability" binding:"required,oneof=Low Medium High"`
	Impact         string  `json:"impact" binding:"required,oneof=Low Medium High"`
	Status         string  `json:"status" binding:"omitempty,oneof=Active Mitigated Closed Monitored"`
	MitigationPlan string  `json:"mitigation_plan"`
	Owner          *string `json:"owner" binding:"omitempty,max=100"`
	DueDate        *string `json:"due_date"`
}

// AddTeamMemberRequest 添加团队成员请求
type AddTeamMemberRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Role       string  `json:"role" binding:"required,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=32"`
	Allocation int     `json:"allocation" binding:"gte=0,lte=100"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

// RiskListQuery 风险列表查询参数
type RiskListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=Active Mitigated Closed Monitored"`
}
