package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-dashboard/internal/model"
)

// 触发器保证updated_at由数据库刷新, 绕过GORM的裸SQL写入也不例外
func TestCreateTriggers_TouchUpdatedAt(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:triggertest?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	require.NoError(t, createTriggers(db))

	project := &model.Project{Name: "Obwodnica", Status: "Planned", Priority: "Medium"}
	require.NoError(t, db.Create(project).Error)

	var before model.Project
	require.NoError(t, db.First(&before, project.ID).Error)

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, db.Exec("UPDATE projects SET name = ? WHERE id = ?", "Obwodnica II", project.ID).Error)

	var after model.Project
	require.NoError(t, db.First(&after, project.ID).Error)
	assert.Equal(t, "Obwodnica II", after.Name)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt),
		"updated_at should advance: before=%s after=%s", before.UpdatedAt, after.UpdatedAt)
}

// 重复建触发器是无操作
func TestCreateTriggers_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:triggertest2?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	require.NoError(t, createTriggers(db))
	require.NoError(t, createTriggers(db))
}
