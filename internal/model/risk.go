package model

import (
	"gorm.io/gorm"

	"portfolio-dashboard/pkg/constants"
)

const RiskTableName = "risks"

// Risk 项目风险
// RiskScore为派生值 = 概率权重 × 影响权重, 由存储层钩子在每次读写时重算,
// 应用代码永远不直接写入
type Risk struct {
	BaseModel
	ProjectID      int64   `gorm:"not null;index" json:"project_id"`
	Title          string  `gorm:"size:200;not null" json:"title"`
	Description    string  `gorm:"type:text;not null" json:"description"`
	Probability    string  `gorm:"size:10;not null" json:"probability"`
	Impact         string  `gorm:"size:10;not null" json:"impact"`
	Status         string  `gorm:"size:20;not null;default:Active;index" json:"status"`
	RiskScore      int     `gorm:"not null;default:0" json:"risk_score"`
	MitigationPlan string  `gorm:"type:text" json:"mitigation_plan"`
	Owner          *string `gorm:"size:100" json:"owner"`
	DueDate        *string `gorm:"size:10" json:"due_date"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Risk) TableName() string {
	return RiskTableName
}

// BeforeSave 写路径重算风险评分
func (r *Risk) BeforeSave(tx *gorm.DB) error {
	r.RiskScore = constants.RiskScore(r.Probability, r.Impact)
	return nil
}

// AfterFind 读路径重算风险评分, 与写路径共用同一函数
func (r *Risk) AfterFind(tx *gorm.DB) error {
	r.RiskScore = constants.RiskScore(r.Probability, r.Impact)
	return nil
}
