package model

const NewsItemTableName = "news_items"

// NewsItem 项目动态
type NewsItem struct {
	BaseModel
	ProjectID int64   `gorm:"not null;index" json:"project_id"`
	Date      string  `gorm:"size:10;not null" json:"date"`
	Content   string  `gorm:"type:text;not null" json:"content"`
	Category  string  `gorm:"size:20;not null;default:Info" json:"category"`
	Author    *string `gorm:"size:100" json:"author"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (NewsItem) TableName() string {
	return NewsItemTableName
}
