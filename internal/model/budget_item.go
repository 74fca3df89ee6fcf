package model

const BudgetItemTableName = "budget_items"

// BudgetItem 预算条目
type BudgetItem struct {
	BaseModel
	ProjectID    int64   `gorm:"not null;index" json:"project_id"`
	Name         string  `gorm:"size:200;not null" json:"name"`
	Category     string  `gorm:"size:20;not null" json:"category"`
	Planned      float64 `gorm:"not null;default:0;check:planned >= 0" json:"planned"`
	Actual       float64 `gorm:"not null;default:0;check:actual >= 0" json:"actual"`
	Forecast     float64 `gorm:"not null;default:0;check:forecast >= 0" json:"forecast"`
	Currency     string  `gorm:"size:3;not null;default:PLN" json:"currency"`
	DateIncurred *string `gorm:"size:10" json:"date_incurred"`
	Description  *string `gorm:"type:text" json:"description"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (BudgetItem) TableName() string {
	return BudgetItemTableName
}
