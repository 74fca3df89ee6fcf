package view

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/pkg/logger"
)

// buildRegions 区域注册表: 每个区域声明依赖信号集与渲染函数
func buildRegions() []*region {
	return []*region{
		newRegion(RegionPage, []string{SignalRoute}, renderPage),
		newRegion(RegionProjectList, []string{SignalStatusFilter, SignalSortKey, SignalSearchText}, renderProjectList),
		newRegion(RegionKpiCards, []string{SignalRoute}, renderKpiCards),
		newRegion(RegionTabContent, []string{SignalActiveTab, SignalRoute}, renderTabContent),
		newRegion(RegionModal, []string{SignalModal}, renderModal),
		newRegion(RegionFeedback, []string{SignalFeedback}, renderFeedback),
	}
}

// storageError 存储不可用时的兜底片段, 引擎绝不panic
func storageError(regionName string, err error) *Fragment {
	logger.Error("区域渲染失败", zap.String("region", regionName), zap.Error(err))
	return El("error").WithAttr("region", regionName).WithText("数据暂时不可用")
}

func renderPage(e *Engine) *Fragment {
	route := e.resolveRoute()
	page := El("page").WithAttr("route", string(route.Kind))
	switch route.Kind {
	case RouteHome:
		page.Append(Text("title", "项目组合看板"))
	case RouteProjectDetail:
		project, err := e.projects.Get(route.ProjectID)
		if err != nil {
			return storageError(RegionPage, err)
		}
		page.WithAttr("project_id", strconv.FormatInt(route.ProjectID, 10)).
			Append(Text("title", project.Name))
	case RouteProjectPresentation:
		project, err := e.projects.Get(route.ProjectID)
		if err != nil {
			return storageError(RegionPage, err)
		}
		page.WithAttr("project_id", strconv.FormatInt(route.ProjectID, 10)).
			WithAttr("slide", route.Slide).
			Append(Text("title", project.Name))

		slide := El("slide").WithAttr("name", route.Slide)
		switch route.Slide {
		case SlideMilestones:
			err = fillMilestones(e, slide, route.ProjectID)
		case SlideBudget:
			err = fillBudget(e, slide, route.ProjectID)
		case SlideRisks:
			err = fillRisks(e, slide, route.ProjectID)
		default:
			fillSummary(slide, project)
		}
		if err != nil {
			return storageError(RegionPage, err)
		}
		page.Append(slide)
	default:
		page.Append(Text("title", "页面不存在"))
	}
	return page
}

func renderProjectList(e *Engine) *Fragment {
	rows, err := e.projects.List(&dto.ProjectListQuery{
		Status: e.signal(SignalStatusFilter),
		Search: e.signal(SignalSearchText),
		Sort:   e.signal(SignalSortKey),
	})
	if err != nil {
		return storageError(RegionProjectList, err)
	}

	list := El("project-list").WithAttr("count", strconv.Itoa(len(rows)))
	for _, row := range rows {
		list.Append(El("project-card").
			WithAttr("id", strconv.FormatInt(row.ID, 10)).
			WithAttr("status", row.Status).
			WithAttr("priority", row.Priority).
			WithAttr("progress", strconv.Itoa(row.Progress)).
			WithText(row.Name))
	}
	return list
}

func renderKpiCards(e *Engine) *Fragment {
	stats, err := e.stats.Dashboard()
	if err != nil {
		return storageError(RegionKpiCards, err)
	}

	kpi := func(name, value string) *Fragment {
		return El("kpi").WithAttr("name", name).WithText(value)
	}
	return El("kpi-cards",
		kpi("total_projects", strconv.FormatInt(stats.TotalProjects, 10)),
		kpi("active_projects", strconv.FormatInt(stats.ActiveProjects, 10)),
		kpi("completed_projects", strconv.FormatInt(stats.CompletedProjects, 10)),
		kpi("at_risk_projects", strconv.FormatInt(stats.AtRiskProjects, 10)),
		kpi("total_budget", fmt.Sprintf("%.2f", stats.TotalBudget)),
		kpi("total_spent", fmt.Sprintf("%.2f", stats.TotalSpent)),
		kpi("budget_utilization_pct", fmt.Sprintf("%.1f", stats.BudgetUtilizationPct)),
		kpi("active_risks", strconv.FormatInt(stats.ActiveRisks, 10)),
		kpi("critical_risks", strconv.FormatInt(stats.CriticalRisks, 10)),
	)
}

func renderTabContent(e *Engine) *Fragment {
	tab := e.signal(SignalActiveTab)
	content := El("tab-content").WithAttr("tab", tab)

	route := e.resolveRoute()
	if route.ProjectID == 0 {
		return content.WithAttr("empty", "true")
	}
	projectID := route.ProjectID
	content.WithAttr("project_id", strconv.FormatInt(projectID, 10))

	switch tab {
	case TabNews:
		items, err := e.news.List(projectID)
		if err != nil {
			return storageError(RegionTabContent, err)
		}
		for _, item := range items {
			content.Append(El("news-item").
				WithAttr("id", strconv.FormatInt(item.ID, 10)).
				WithAttr("date", item.Date).
				WithAttr("category", item.Category).
				WithText(item.Content))
		}
	case TabTimeline:
		if err := fillMilestones(e, content, projectID); err != nil {
			return storageError(RegionTabContent, err)
		}
	case TabBudget:
		if err := fillBudget(e, content, projectID); err != nil {
			return storageError(RegionTabContent, err)
		}
	case TabRisks:
		if err := fillRisks(e, content, projectID); err != nil {
			return storageError(RegionTabContent, err)
		}
	case TabTeam:
		members, err := e.members.List(projectID)
		if err != nil {
			return storageError(RegionTabContent, err)
		}
		for _, member := range members {
			content.Append(El("team-member").
				WithAttr("id", strconv.FormatInt(member.ID, 10)).
				WithAttr("role", member.Role).
				WithAttr("allocation", strconv.Itoa(member.Allocation)).
				WithText(member.Name))
		}
	case TabAnalytics:
		project, err := e.projects.Get(projectID)
		if err != nil {
			return storageError(RegionTabContent, err)
		}
		content.Append(
			El("metric").WithAttr("name", "budget_actual").WithText(fmt.Sprintf("%.2f", project.BudgetActual)),
			El("metric").WithAttr("name", "budget_forecast").WithText(fmt.Sprintf("%.2f", project.BudgetForecast)),
			El("metric").WithAttr("name", "active_risks").WithText(strconv.FormatInt(project.ActiveRisks, 10)),
			El("metric").WithAttr("name", "milestones_done").WithText(
				fmt.Sprintf("%d/%d", project.MilestonesDone, project.MilestonesTotal)),
			El("metric").WithAttr("name", "team_size").WithText(strconv.FormatInt(project.TeamSize, 10)),
			El("metric").WithAttr("name", "mean_allocation").WithText(fmt.Sprintf("%.1f", project.MeanAllocation)),
		)
	}
	return content
}

// fillMilestones 里程碑列表, 标签页与演示幻灯片共用
func fillMilestones(e *Engine, c *Fragment, projectID int64) error {
	milestones, err := e.milestones.List(projectID)
	if err != nil {
		return err
	}
	for _, m := range milestones {
		c.Append(El("milestone").
			WithAttr("id", strconv.FormatInt(m.ID, 10)).
			WithAttr("status", m.Status).
			WithAttr("progress", strconv.Itoa(m.Progress)).
			WithText(m.Title))
	}
	return nil
}

func fillBudget(e *Engine, c *Fragment, projectID int64) error {
	items, err := e.budget.List(projectID)
	if err != nil {
		return err
	}
	totals, err := e.budget.Totals(projectID)
	if err != nil {
		return err
	}
	c.WithAttr("planned_total", fmt.Sprintf("%.2f", totals.Planned)).
		WithAttr("actual_total", fmt.Sprintf("%.2f", totals.Actual)).
		WithAttr("forecast_total", fmt.Sprintf("%.2f", totals.Forecast))
	for _, item := range items {
		c.Append(El("budget-item").
			WithAttr("id", strconv.FormatInt(item.ID, 10)).
			WithAttr("category", item.Category).
			WithAttr("planned", fmt.Sprintf("%.2f", item.Planned)).
			WithAttr("actual", fmt.Sprintf("%.2f", item.Actual)).
			WithText(item.Name))
	}
	return nil
}

func fillRisks(e *Engine, c *Fragment, projectID int64) error {
	risks, err := e.risks.List(projectID, &dto.RiskListQuery{})
	if err != nil {
		return err
	}
	for _, risk := range risks {
		c.Append(El("risk").
			WithAttr("id", strconv.FormatInt(risk.ID, 10)).
			WithAttr("probability", risk.Probability).
			WithAttr("impact", risk.Impact).
			WithAttr("score", strconv.Itoa(risk.RiskScore)).
			WithAttr("status", risk.Status).
			WithText(risk.Title))
	}
	return nil
}

// fillSummary 主幻灯片: 项目概要指标
func fillSummary(c *Fragment, project *dto.ProjectResponse) {
	c.WithAttr("status", project.Status).
		WithAttr("priority", project.Priority).
		WithAttr("progress", strconv.Itoa(project.Progress))
	c.Append(
		El("metric").WithAttr("name", "budget_plan").WithText(fmt.Sprintf("%.2f", project.BudgetPlan)),
		El("metric").WithAttr("name", "budget_actual").WithText(fmt.Sprintf("%.2f", project.BudgetActual)),
		El("metric").WithAttr("name", "milestones_done").WithText(
			fmt.Sprintf("%d/%d", project.MilestonesDone, project.MilestonesTotal)),
		El("metric").WithAttr("name", "active_risks").WithText(strconv.FormatInt(project.ActiveRisks, 10)),
		El("metric").WithAttr("name", "team_size").WithText(strconv.FormatInt(project.TeamSize, 10)),
	)
}

func renderModal(e *Engine) *Fragment {
	modal := El("modal").WithAttr("state", string(e.modal.State))
	if e.modal.State == ModalClosed {
		return modal
	}
	modal.WithAttr("form", e.modal.Form)
	if e.modal.Err != "" {
		// 行内错误: 表单保持打开且输入内容保留
		modal.Append(Text("inline-error", e.modal.Err))
	}
	if len(e.modal.Input) > 0 {
		modal.WithAttr("has_input", "true")
	}
	return modal
}

func renderFeedback(e *Engine) *Fragment {
	if e.feedback == nil {
		return El("feedback")
	}
	return e.feedback
}
