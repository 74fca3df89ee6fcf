package view

// 区域名
const (
	RegionPage        = "page"
	RegionProjectList = "project-list"
	RegionKpiCards    = "kpi-cards"
	RegionTabContent  = "tab-content"
	RegionModal       = "modal"
	RegionFeedback    = "feedback"
)

// region 命名容器: 声明依赖的信号集合与纯渲染函数
// 渲染函数只读引擎状态与存储, 不产生副作用
type region struct {
	name   string
	deps   map[string]bool
	render func(e *Engine) *Fragment
}

func (r *region) dependsOn(signal string) bool {
	return r.deps[signal]
}

func newRegion(name string, deps []string, render func(e *Engine) *Fragment) *region {
	depSet := make(map[string]bool, len(deps))
	for _, d := range deps {
		depSet[d] = true
	}
	return &region{name: name, deps: depSet, render: render}
}
