package services

import (
	"testing"

	"roominv-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBuildingService(db, testConfig())

	building := &models.Building{Name: "Headquarters"}
	require.NoError(t, svc.CreateBuilding(building))
	require.NotZero(t, building.ID)

	got, err := svc.GetBuildingByID(building.ID)
	require.NoError(t, err)
	assert.Equal(t, "Headquarters", got.Name)

	updated, err := svc.UpdateBuilding(building.ID, map[string]interface{}{"name": "Annex"})
	require.NoError(t, err)
	assert.Equal(t, "Annex", updated.Name)

	require.NoError(t, svc.DeleteBuilding(building.ID))

	_, err = svc.GetBuildingByID(building.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetAllBuildingsPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBuildingService(db, testConfig())

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.CreateBuilding(&models.Building{Name: "B"}))
	}

	buildings, total, err := svc.GetAllBuildings(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, buildings, 3)

	buildings, total, err = svc.GetAllBuildings(2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, buildings, 2)
}

func TestGetBuildingRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBuildingService(db, testConfig())

	building := &models.Building{Name: "Office Block"}
	require.NoError(t, svc.CreateBuilding(building))

	for _, name := range []string{"101", "102"} {
		require.NoError(t, db.Create(&models.Room{
			Name: name, Width: 4, Length: 5, Height: 3, BuildingID: building.ID,
		}).Error)
	}

	rooms, err := svc.GetBuildingRooms(building.ID)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	_, err = svc.GetBuildingRooms(9999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteBuildingKeepsRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBuildingService(db, testConfig())

	building := &models.Building{Name: "Old Wing"}
	require.NoError(t, svc.CreateBuilding(building))
	room := &models.Room{Name: "201", Width: 4, Length: 5, Height: 3, BuildingID: building.ID}
	require.NoError(t, db.Create(room).Error)

	// 删除建筑不级联删除房间
	require.NoError(t, svc.DeleteBuilding(building.ID))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
