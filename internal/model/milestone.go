package model

import "gorm.io/datatypes"

const MilestoneTableName = "milestones"

// Milestone 项目里程碑
// 日期顺序不做校验(沿用原有宽松契约); Dependencies仅作不透明元数据存储,
// 不校验存在性与环
type Milestone struct {
	BaseModel
	ProjectID    int64                      `gorm:"not null;index" json:"project_id"`
	Title        string                     `gorm:"size:200;not null" json:"title"`
	Description  *string                    `gorm:"type:text" json:"description"`
	StartDate    *string                    `gorm:"size:10" json:"start_date"`
	EndDate      *string                    `gorm:"size:10" json:"end_date"`
	Status       string                     `gorm:"size:20;not null;default:Planned" json:"status"`
	Progress     int                        `gorm:"not null;default:0;check:progress >= 0 AND progress <= 100" json:"progress"`
	Dependencies datatypes.JSONSlice[int64] `gorm:"type:json" json:"dependencies"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Milestone) TableName() string {
	return MilestoneTableName
}
