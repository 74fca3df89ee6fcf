package view

import (
	"encoding/json"

	"go.uber.org/zap"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/pkg/logger"
	pkgErrors "portfolio-dashboard/pkg/errors"
)

// modalPayload 模态动作载荷
type modalPayload struct {
	Form      string                 `json:"form"`
	ProjectID int64                  `json:"project_id"`
	Fields    map[string]interface{} `json:"fields"`
}

// decodePayload 任意载荷经json往返解码为结构
func decodePayload(value interface{}) (*modalPayload, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "非法的动作载荷")
	}
	var payload modalPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "非法的动作载荷")
	}
	return &payload, nil
}

// handleModalOpen Closed → Open; 重复打开重置表单上下文
func (e *Engine) handleModalOpen(value interface{}) (map[string]*Fragment, error) {
	payload, err := decodePayload(value)
	if err != nil {
		return nil, err
	}
	if !validForms[payload.Form] {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "未知的表单: "+payload.Form)
	}

	e.modal = modalContext{State: ModalOpen, Form: payload.Form}
	changed := make(map[string]*Fragment)
	e.refreshRegion(RegionModal, changed)
	return changed, nil
}

// handleModalCancel Open → Closed; 关闭状态下取消为无操作
func (e *Engine) handleModalCancel() (map[string]*Fragment, error) {
	e.modal = modalContext{State: ModalClosed}
	e.feedback = nil
	changed := make(map[string]*Fragment)
	e.refreshRegion(RegionModal, changed)
	e.refreshRegion(RegionFeedback, changed)
	return changed, nil
}

// handleModalSubmit 提交: 先完成写操作, 失败转为反馈片段, 成功才重算数据区域
func (e *Engine) handleModalSubmit(value interface{}) (map[string]*Fragment, error) {
	if e.modal.State != ModalOpen {
		return nil, pkgErrors.New(pkgErrors.CodeValidationError, "模态框未打开, 无法提交")
	}

	payload, err := decodePayload(value)
	if err != nil {
		return nil, err
	}
	if payload.Form == "" {
		payload.Form = e.modal.Form
	}

	changed := make(map[string]*Fragment)
	writeErr := e.submitForm(payload)
	if writeErr != nil {
		// 校验类错误: 表单保持打开, 输入保留, 行内错误展示
		if appErr, ok := writeErr.(*pkgErrors.AppError); ok && appErr.Code != pkgErrors.CodeDatabaseError {
			e.modal = modalContext{
				State: ModalOpen,
				Form:  payload.Form,
				Input: payload.Fields,
				Err:   appErr.Message,
			}
			e.feedback = El("feedback").
				WithAttr("level", "error").
				WithAttr("form", payload.Form).
				WithText(appErr.Message)
		} else {
			// 存储不可用: 通用失败横幅, 记录日志, 引擎继续存活
			logger.Error("表单提交写入失败", zap.String("form", payload.Form), zap.Error(writeErr))
			e.modal.Input = payload.Fields
			e.feedback = El("feedback").
				WithAttr("level", "error").
				WithText("操作失败, 请稍后重试")
		}
		e.refreshRegion(RegionModal, changed)
		e.refreshRegion(RegionFeedback, changed)
		return changed, nil
	}

	// 成功提交: 关闭模态框并失效列表与标签区域
	e.modal = modalContext{State: ModalClosed}
	e.feedback = El("feedback").
		WithAttr("level", "success").
		WithAttr("form", payload.Form).
		WithText("保存成功")
	e.refreshRegion(RegionModal, changed)
	e.refreshRegion(RegionFeedback, changed)
	e.recomputeData(changed)
	return changed, nil
}

// submitForm 按表单分发到对应服务的写操作
func (e *Engine) submitForm(payload *modalPayload) error {
	raw, err := json.Marshal(payload.Fields)
	if err != nil {
		return pkgErrors.New(pkgErrors.CodeValidationError, "非法的表单字段")
	}

	switch payload.Form {
	case FormProject:
		var req dto.CreateProjectRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的表单字段")
		}
		_, err := e.projects.Create(&req)
		return err
	case FormNews:
		var req dto.AddNewsRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的表单字段")
		}
		_, err := e.news.Add(payload.ProjectID, &req)
		return err
	case FormMilestone:
		var req dto.AddMilestoneRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的表单字段")
		}
		_, err := e.milestones.Add(payload.ProjectID, &req)
		return err
	case FormBudgetItem:
		var req dto.AddBudgetItemRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的表单字段")
		}
		_, err := e.budget.Add(payload.ProjectID, &req)
		return err
	case FormRisk:
		var req dto.AddRiskRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的表单字段")
		}
		_, err := e.risks.Add(payload.ProjectID, &req)
		return err
	case FormTeamMember:
		var req dto.AddTeamMemberRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return pkgErrors.New(pkgErrors.CodeValidationError, "非法的表单字段")
		}
		_, err := e.members.Add(payload.ProjectID, &req)
		return err
	default:
		return pkgErrors.New(pkgErrors.CodeValidationError, "未知的表单: "+payload.Form)
	}
}
