package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio-dashboard/internal/model"
)

func TestSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(AllModels()...))

	require.NoError(t, Seed(db))

	var projects int64
	require.NoError(t, db.Model(&model.Project{}).Count(&projects).Error)
	assert.Equal(t, int64(4), projects)

	// 每个项目都有完整的从属数据
	for _, m := range []interface{}{
		&model.NewsItem{}, &model.Milestone{}, &model.BudgetItem{}, &model.Risk{}, &model.TeamMember{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Positive(t, count)
	}

	// 示例数据中至少一条High×High的活跃风险
	var critical int64
	require.NoError(t, db.Model(&model.Risk{}).
		Where("status = ? AND probability = ? AND impact = ?", "Active", "High", "High").
		Count(&critical).Error)
	assert.Positive(t, critical)

	// 重复Seed是无操作
	require.NoError(t, Seed(db))
	require.NoError(t, db.Model(&model.Project{}).Count(&projects).Error)
	assert.Equal(t, int64(4), projects)
}
