package view

import (
	"strconv"
	"strings"
)

// RouteKind 路由种类
type RouteKind string

const (
	RouteHome                RouteKind = "Home"
	RouteProjectDetail       RouteKind = "ProjectDetail"
	RouteProjectPresentation RouteKind = "ProjectPresentation"
	RouteNotFound            RouteKind = "NotFound"
)

// 演示模式幻灯片标识
const (
	SlideMain       = "main"
	SlideMilestones = "milestones"
	SlideBudget     = "budget"
	SlideRisks      = "risks"
)

var validSlides = map[string]bool{
	SlideMain:       true,
	SlideMilestones: true,
	SlideBudget:     true,
	SlideRisks:      true,
}

// Route 解析结果
type Route struct {
	Kind      RouteKind `json:"kind"`
	ProjectID int64     `json:"project_id,omitempty"`
	Slide     string    `json:"slide,omitempty"`
}

// ParseRoute 语法级路由解析, 不触碰存储
// 已删除项目的悬空id由引擎在渲染时降级为NotFound
func ParseRoute(path string) Route {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return Route{Kind: RouteHome}
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if parts[0] != "project" || len(parts) < 2 || len(parts) > 4 {
		return Route{Kind: RouteNotFound}
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return Route{Kind: RouteNotFound}
	}

	switch len(parts) {
	case 2:
		return Route{Kind: RouteProjectDetail, ProjectID: id}
	case 3:
		if parts[2] != "presentation" {
			return Route{Kind: RouteNotFound}
		}
		return Route{Kind: RouteProjectPresentation, ProjectID: id, Slide: SlideMain}
	default:
		if parts[2] != "presentation" || !validSlides[parts[3]] {
			return Route{Kind: RouteNotFound}
		}
		return Route{Kind: RouteProjectPresentation, ProjectID: id, Slide: parts[3]}
	}
}
