package services

import (
	"path/filepath"
	"testing"

	"roominv-http-service/config"
	"roominv-http-service/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建测试用的sqlite数据库并迁移所有表
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Building{},
		&models.RoomType{},
		&models.Room{},
	))

	// 十种设备各自一张表
	for _, spec := range models.ObjectKindSpecs {
		require.NoError(t, db.Table(spec.Table).AutoMigrate(&models.RoomObject{}))
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{EnvType: "LOCAL"}
}

func floatPtr(v float64) *float64 { return &v }

func uintPtr(v uint) *uint { return &v }

// createTestRoom 创建一个挂在新建筑下的房间
func createTestRoom(t *testing.T, db *gorm.DB, name string, width, length, height float64) *models.Room {
	t.Helper()

	building := &models.Building{Name: name + " Building"}
	require.NoError(t, db.Create(building).Error)

	room := &models.Room{
		Name:       name,
		Width:      width,
		Length:     length,
		Height:     height,
		BuildingID: building.ID,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}
