package view

// 信号名
// 普通信号写入后按依赖集重算区域; 动作信号触发写操作与模态状态机
const (
	SignalRoute        = "route"
	SignalStatusFilter = "status_filter"
	SignalSortKey      = "sort_key"
	SignalSearchText   = "search_text"
	SignalActiveTab    = "active_tab"

	// 内部信号, 由状态机驱动, 不接受外部直写
	SignalModal    = "modal"
	SignalFeedback = "feedback"

	// 动作信号
	SignalModalOpen   = "modal.open"
	SignalModalSubmit = "modal.submit"
	SignalModalCancel = "modal.cancel"
)

// 标签页标识
const (
	TabNews      = "news"
	TabTimeline  = "timeline"
	TabBudget    = "budget"
	TabRisks     = "risks"
	TabTeam      = "team"
	TabAnalytics = "analytics"
)

var validTabs = map[string]bool{
	TabNews:      true,
	TabTimeline:  true,
	TabBudget:    true,
	TabRisks:     true,
	TabTeam:      true,
	TabAnalytics: true,
}

// 模态表单标识
const (
	FormProject    = "project"
	FormNews       = "news"
	FormMilestone  = "milestone"
	FormBudgetItem = "budget_item"
	FormRisk       = "risk"
	FormTeamMember = "team_member"
)

var validForms = map[string]bool{
	FormProject:    true,
	FormNews:       true,
	FormMilestone:  true,
	FormBudgetItem: true,
	FormRisk:       true,
	FormTeamMember: true,
}

// ModalState 模态框状态机状态
type ModalState string

const (
	ModalClosed ModalState = "Closed"
	ModalOpen   ModalState = "Open"
)

// modalContext 当前模态框上下文
// Input保留最近一次提交的原始载荷, 校验失败时表单内容不丢失
type modalContext struct {
	State ModalState
	Form  string
	Input map[string]interface{}
	Err   string
}
