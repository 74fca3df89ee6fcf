package handler

import (
	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard 获取看板聚合指标
// @Summary 获取看板聚合指标
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response{data=dto.DashboardStats}
// @Router /api/v1/dashboard/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard()
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, stats)
}
