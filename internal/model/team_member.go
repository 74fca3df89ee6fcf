package model

const TeamMemberTableName = "team_members"

// TeamMember 项目团队成员
type TeamMember struct {
	BaseModel
	ProjectID  int64   `gorm:"not null;index" json:"project_id"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	Role       string  `gorm:"size:100;not null" json:"role"`
	Email      *string `gorm:"size:100" json:"email"`
	Phone      *string `gorm:"size:32" json:"phone"`
	Allocation int     `gorm:"not null;default:100;check:allocation >= 0 AND allocation <= 100" json:"allocation"`
	StartDate  *string `gorm:"size:10" json:"start_date"`
	EndDate    *string `gorm:"size:10" json:"end_date"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (TeamMember) TableName() string {
	return TeamMemberTableName
}
