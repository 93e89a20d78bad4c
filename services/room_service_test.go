package services

import (
	"testing"

	"roominv-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig(), nil)

	building := &models.Building{Name: "Main"}
	require.NoError(t, db.Create(building).Error)

	room := &models.Room{Name: "Lab", Width: 6, Length: 8, Height: 3, BuildingID: building.ID}
	require.NoError(t, svc.CreateRoom(room))
	require.NotZero(t, room.ID)

	got, err := svc.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lab", got.Name)
	assert.Equal(t, 6.0, got.Width)
	assert.Equal(t, 8.0, got.Length)
	assert.Equal(t, 3.0, got.Height)

	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{"name": "Workshop"})
	require.NoError(t, err)
	assert.Equal(t, "Workshop", updated.Name)

	require.NoError(t, svc.DeleteRoom(room.ID))

	_, err = svc.GetRoomByID(room.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreateRoomUnknownBuilding(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig(), nil)

	room := &models.Room{Name: "Ghost", Width: 4, Length: 4, Height: 3, BuildingID: 9999}
	err := svc.CreateRoom(room)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetRoomsByBuilding(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig(), nil)

	b1 := &models.Building{Name: "B1"}
	b2 := &models.Building{Name: "B2"}
	require.NoError(t, db.Create(b1).Error)
	require.NoError(t, db.Create(b2).Error)

	require.NoError(t, svc.CreateRoom(&models.Room{Name: "R1", Width: 4, Length: 4, Height: 3, BuildingID: b1.ID}))
	require.NoError(t, svc.CreateRoom(&models.Room{Name: "R2", Width: 4, Length: 4, Height: 3, BuildingID: b1.ID}))
	require.NoError(t, svc.CreateRoom(&models.Room{Name: "R3", Width: 4, Length: 4, Height: 3, BuildingID: b2.ID}))

	rooms, err := svc.GetRoomsByBuilding(b1.ID)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	rooms, err = svc.GetRoomsByBuilding(9999)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestResolveRoomTypeName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, testConfig(), nil)

	building := &models.Building{Name: "Main"}
	require.NoError(t, db.Create(building).Error)
	roomType := &models.RoomType{Name: "Laboratory"}
	require.NoError(t, db.Create(roomType).Error)

	room := &models.Room{
		Name: "Lab", Width: 6, Length: 8, Height: 3,
		BuildingID: building.ID, RoomTypeID: &roomType.ID,
	}
	require.NoError(t, svc.CreateRoom(room))

	name, err := svc.ResolveRoomTypeName(room)
	require.NoError(t, err)
	assert.Equal(t, "Laboratory", name)

	// 未设置类型的房间返回空名称
	untyped := &models.Room{Name: "Hall", Width: 4, Length: 4, Height: 3, BuildingID: building.ID}
	require.NoError(t, svc.CreateRoom(untyped))
	name, err = svc.ResolveRoomTypeName(untyped)
	require.NoError(t, err)
	assert.Equal(t, "", name)

	// 类型是弱引用，被删除后解析返回查找失败
	require.NoError(t, db.Delete(roomType).Error)
	_, err = svc.ResolveRoomTypeName(room)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteRoomKeepsObjects(t *testing.T) {
	db := setupTestDB(t)
	roomSvc := NewRoomService(db, testConfig(), nil)
	doorSvc := newObjectService(t, db, models.KindDoor)

	room := createTestRoom(t, db, "Storage", 3, 3, 3)
	door := newDoor("Storage Door", &room.ID)
	require.NoError(t, doorSvc.SaveObject(door))

	// 删除房间不级联删除房间内的设备
	require.NoError(t, roomSvc.DeleteRoom(room.ID))

	got, err := doorSvc.GetObjectByID(door.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RoomID)
	assert.Equal(t, room.ID, *got.RoomID)
}
