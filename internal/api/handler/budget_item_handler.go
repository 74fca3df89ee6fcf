package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type BudgetItemHandler struct {
	budgetService service.BudgetItemService
}

func NewBudgetItemHandler(budgetService service.BudgetItemService) *BudgetItemHandler {
	return &BudgetItemHandler{budgetService: budgetService}
}

// Add 添加预算条目
// @Summary 添加预算条目
// @Tags Budget
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.AddBudgetItemRequest true "添加预算条目请求"
// @Success 200 {object} utils.Response{data=model.BudgetItem}
// @Router /api/v1/project/{id}/budget-items [post]
func (h *BudgetItemHandler) Add(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	var req dto.AddBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	item, err := h.budgetService.Add(projectID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, item)
}

// List 获取预算条目列表
// @Summary 获取预算条目列表（含汇总）
// @Tags Budget
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/project/{id}/budget-items [get]
func (h *BudgetItemHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	items, err := h.budgetService.List(projectID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	totals, err := h.budgetService.Totals(projectID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{
		"items":  items,
		"totals": totals,
	})
}

// Delete 删除预算条目
// @Summary 删除预算条目
// @Tags Budget
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param itemId path int64 true "预算条目ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/project/{id}/budget-items/{itemId} [delete]
func (h *BudgetItemHandler) Delete(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的预算条目ID")
		return
	}

	if err := h.budgetService.Delete(itemID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
