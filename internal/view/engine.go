package view

import (
	"sync"

	"go.uber.org/zap"

	"portfolio-dashboard/internal/pkg/logger"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/constants"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

// Engine 视图同步引擎
// 信号写入只重算依赖该信号的区域, 其余区域保持片段身份不变
type Engine struct {
	mu sync.Mutex

	signals  map[string]string
	modal    modalContext
	feedback *Fragment

	regions []*region
	current map[string]*Fragment

	projects   service.ProjectService
	news       service.NewsService
	milestones service.MilestoneService
	budget     service.BudgetItemService
	risks      service.RiskService
	members    service.TeamMemberService
	stats      service.StatsService
}

// Services 引擎依赖的全部领域服务
type Services struct {
	Project    service.ProjectService
	News       service.NewsService
	Milestone  service.MilestoneService
	BudgetItem service.BudgetItemService
	Risk       service.RiskService
	TeamMember service.TeamMemberService
	Stats      service.StatsService
}

func NewEngine(svcs Services) *Engine {
	e := &Engine{
		signals: map[string]string{
			SignalRoute:     "/",
			SignalActiveTab: TabNews,
		},
		modal:      modalContext{State: ModalClosed},
		current:    make(map[string]*Fragment),
		projects:   svcs.Project,
		news:       svcs.News,
		milestones: svcs.Milestone,
		budget:     svcs.BudgetItem,
		risks:      svcs.Risk,
		members:    svcs.TeamMember,
		stats:      svcs.Stats,
	}
	e.regions = buildRegions()
	for _, r := range e.regions {
		e.current[r.name] = r.render(e)
	}
	return e
}

// Regions 返回全部区域的当前片段
func (e *Engine) Regions() map[string]*Fragment {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]*Fragment, len(e.current))
	for name, frag := range e.current {
		out[name] = frag
	}
	return out
}

// SetSignal 写入信号并返回本次变更的区域片段
// 动作信号走状态机路径, 普通信号只触发依赖区域的重算
func (e *Engine) SetSignal(name string, value interface{}) (map[string]*Fragment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch name {
	case SignalModalOpen:
		return e.handleModalOpen(value)
	case SignalModalSubmit:
		return e.handleModalSubmit(value)
	case SignalModalCancel:
		return e.handleModalCancel()
	case SignalModal, SignalFeedback:
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "内部信号不接受外部写入: "+name)
	}

	str, ok := value.(string)
	if !ok {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "信号值必须为字符串: "+name)
	}
	if err := validateSignal(name, str); err != nil {
		return nil, err
	}

	e.signals[name] = str
	return e.recompute(name), nil
}

// validateSignal 普通信号取值校验
func validateSignal(name, value string) error {
	switch name {
	case SignalRoute, SignalSearchText:
		return nil
	case SignalStatusFilter:
		if value != "" && !constants.ValidEnum("project_status", value) {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的状态过滤值: "+value)
		}
	case SignalSortKey:
		if value != "" && !constants.ValidEnum("sort_key", value) {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的排序键: "+value)
		}
	case SignalActiveTab:
		if !validTabs[value] {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的标签页: "+value)
		}
	default:
		return pkgErrors.New(pkgErrors.CodeValidationError, "未知信号: "+name)
	}
	return nil
}

// recompute 重算依赖指定信号的区域, 返回变更集
func (e *Engine) recompute(signal string) map[string]*Fragment {
	changed := make(map[string]*Fragment)
	for _, r := range e.regions {
		if !r.dependsOn(signal) {
			continue
		}
		frag := r.render(e)
		e.current[r.name] = frag
		changed[r.name] = frag
	}
	return changed
}

// recomputeData 写操作成功后重算全部数据区域
func (e *Engine) recomputeData(changed map[string]*Fragment) {
	for _, name := range []string{RegionProjectList, RegionKpiCards, RegionTabContent, RegionPage} {
		for _, r := range e.regions {
			if r.name != name {
				continue
			}
			frag := r.render(e)
			e.current[name] = frag
			changed[name] = frag
		}
	}
}

// refreshRegion 重算单个区域并记入变更集
func (e *Engine) refreshRegion(name string, changed map[string]*Fragment) {
	for _, r := range e.regions {
		if r.name != name {
			continue
		}
		frag := r.render(e)
		e.current[name] = frag
		changed[name] = frag
	}
}

// signal 读取普通信号当前值
func (e *Engine) signal(name string) string {
	return e.signals[name]
}

// currentRoute 解析当前路由信号
func (e *Engine) currentRoute() Route {
	return ParseRoute(e.signals[SignalRoute])
}

// resolveRoute 解析并核实路由: 悬空项目id降级为NotFound
func (e *Engine) resolveRoute() Route {
	route := e.currentRoute()
	if route.ProjectID == 0 {
		return route
	}
	if _, err := e.projects.Get(route.ProjectID); err != nil {
		if !pkgErrors.IsCode(err, pkgErrors.CodeNotFound) {
			logger.Error("路由项目查询失败", zap.Int64("id", route.ProjectID), zap.Error(err))
		}
		return Route{Kind: RouteNotFound}
	}
	return route
}
