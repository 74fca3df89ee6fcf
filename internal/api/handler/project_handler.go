package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create 创建项目
// @Summary 创建项目
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "创建项目请求"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/project [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// GetByID 获取项目详情
// @Summary 获取项目详情（含聚合指标）
// @Tags Project
// @Accept json
// @Produce json
// @Param id query int64 true "项目ID"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/project [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	var req dto.GetProjectRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Get(req.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// List 获取项目列表
// @Summary 获取项目列表（支持状态过滤/搜索/排序）
// @Tags Project
// @Accept json
// @Produce json
// @Param status query string false "状态过滤"
// @Param search query string false "搜索关键字"
// @Param sort query string false "排序键"
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	projects, err := h.projectService.List(&query)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, projects)
}

// Update 更新项目
// @Summary 更新项目（整行替换语义）
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.UpdateProjectRequest true "更新项目请求"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/v1/project [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Update(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, project)
}

// Delete 删除项目
// @Summary 删除项目（含全部从属数据）
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/project/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
