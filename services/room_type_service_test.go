package services

import (
	"testing"

	"roominv-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTypeCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomTypeService(db, testConfig())

	roomType := &models.RoomType{Name: "Office"}
	require.NoError(t, svc.CreateRoomType(roomType))
	require.NotZero(t, roomType.ID)

	got, err := svc.GetRoomTypeByID(roomType.ID)
	require.NoError(t, err)
	assert.Equal(t, "Office", got.Name)

	updated, err := svc.UpdateRoomType(roomType.ID, map[string]interface{}{"name": "Meeting Room"})
	require.NoError(t, err)
	assert.Equal(t, "Meeting Room", updated.Name)

	all, err := svc.GetAllRoomTypes()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteRoomType(roomType.ID))

	_, err = svc.GetRoomTypeByID(roomType.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteRoomTypeKeepsRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomTypeService(db, testConfig())

	building := &models.Building{Name: "Main"}
	require.NoError(t, db.Create(building).Error)
	roomType := &models.RoomType{Name: "Lab"}
	require.NoError(t, svc.CreateRoomType(roomType))

	room := &models.Room{
		Name: "Lab 1", Width: 6, Length: 8, Height: 3,
		BuildingID: building.ID, RoomTypeID: &roomType.ID,
	}
	require.NoError(t, db.Create(room).Error)

	// 房间对类型是弱引用，删除类型后房间照常存在
	require.NoError(t, svc.DeleteRoomType(roomType.ID))

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	require.NotNil(t, got.RoomTypeID)
	assert.Equal(t, roomType.ID, *got.RoomTypeID)
}
