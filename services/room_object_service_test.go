package services

import (
	"strings"
	"testing"

	"roominv-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newObjectService 创建指定种类的设备服务
func newObjectService(t *testing.T, db *gorm.DB, kind models.ObjectKind) InterfaceRoomObjectService {
	t.Helper()
	spec, ok := models.SpecForKind(kind)
	require.True(t, ok)
	return NewRoomObjectService(db, testConfig(), spec)
}

// newDoor 构造一个校验能通过的门
func newDoor(name string, roomID *uint) *models.RoomObject {
	return &models.RoomObject{
		CustomName: name,
		PosX:       floatPtr(0),
		PosY:       floatPtr(0),
		PosZ:       floatPtr(0),
		SizeX:      floatPtr(1),
		SizeY:      floatPtr(2),
		SizeZ:      floatPtr(0.5),
		RoomID:     roomID,
	}
}

func TestSaveObjectAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindDoor)
	room := createTestRoom(t, db, "Office", 4, 5, 3)

	door := newDoor("Front Door", &room.ID)
	require.NoError(t, svc.SaveObject(door))
	require.NotZero(t, door.ID)

	got, err := svc.GetObjectByID(door.ID)
	require.NoError(t, err)
	assert.Equal(t, "Front Door", got.CustomName)
	assert.Equal(t, 0.0, *got.PosX)
	assert.Equal(t, 1.0, *got.SizeX)
	assert.Equal(t, 2.0, *got.SizeY)
	assert.Equal(t, 0.5, *got.SizeZ)
	require.NotNil(t, got.RoomID)
	assert.Equal(t, room.ID, *got.RoomID)
}

func TestGetObjectByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindDoor)

	_, err := svc.GetObjectByID(9999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSaveObjectMissingPosition(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindDoor)

	door := newDoor("Broken Door", nil)
	door.PosZ = nil
	err := svc.SaveObject(door)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSaveObjectNegativePosition(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindLamp)

	lamp := &models.RoomObject{
		PosX: floatPtr(-0.1),
		PosY: floatPtr(0),
		PosZ: floatPtr(0),
	}
	err := svc.SaveObject(lamp)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestDoorSizeBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindDoor)

	// 正好等于上限可以保存
	door := newDoor("Huge Door", nil)
	door.SizeX = floatPtr(10.0)
	require.NoError(t, svc.SaveObject(door))

	// 超过上限被拒绝
	over := newDoor("Too Big", nil)
	over.SizeX = floatPtr(10.01)
	err := svc.SaveObject(over)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// 尺寸缺失被拒绝
	missing := newDoor("No Size", nil)
	missing.SizeY = nil
	err = svc.SaveObject(missing)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// 尺寸必须为正
	zero := newDoor("Flat", nil)
	zero.SizeZ = floatPtr(0)
	err = svc.SaveObject(zero)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestPositionOnlyKindIgnoresSize(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindLamp)

	lamp := &models.RoomObject{
		CustomName: "Desk Lamp",
		PosX:       floatPtr(1),
		PosY:       floatPtr(1),
		PosZ:       floatPtr(2),
		SizeX:      floatPtr(3),
		SizeY:      floatPtr(3),
		SizeZ:      floatPtr(3),
	}
	require.NoError(t, svc.SaveObject(lamp))

	got, err := svc.GetObjectByID(lamp.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SizeX)
	assert.Nil(t, got.SizeY)
	assert.Nil(t, got.SizeZ)
}

func TestCustomNameValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindPlug)

	base := func(name string) *models.RoomObject {
		return &models.RoomObject{
			CustomName: name,
			PosX:       floatPtr(0),
			PosY:       floatPtr(0),
			PosZ:       floatPtr(0),
		}
	}

	// 去除空白后为空的名称被拒绝
	err := svc.SaveObject(base("   "))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// 超过100个字符被拒绝
	err = svc.SaveObject(base(strings.Repeat("a", 101)))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// 正好100个字符可以保存
	require.NoError(t, svc.SaveObject(base(strings.Repeat("a", 100))))

	// 空名称合法（未命名设备）
	require.NoError(t, svc.SaveObject(base("")))
}

func TestSaveObjectUnknownRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindDoor)

	door := newDoor("Orphan Door", uintPtr(12345))
	err := svc.SaveObject(door)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestUpsertByExplicitID(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindWindow)

	// 指定ID插入
	window := newDoor("North Window", nil)
	window.ID = 42
	require.NoError(t, svc.SaveObject(window))

	got, err := svc.GetObjectByID(42)
	require.NoError(t, err)
	assert.Equal(t, "North Window", got.CustomName)

	// 相同ID再次保存则整行覆盖
	updated := newDoor("South Window", nil)
	updated.ID = 42
	updated.PosX = floatPtr(3)
	require.NoError(t, svc.SaveObject(updated))

	got, err = svc.GetObjectByID(42)
	require.NoError(t, err)
	assert.Equal(t, "South Window", got.CustomName)
	assert.Equal(t, 3.0, *got.PosX)

	count, err := svc.CountObjects()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteObjectIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindSiren)

	siren := &models.RoomObject{
		PosX: floatPtr(0), PosY: floatPtr(0), PosZ: floatPtr(2.5),
	}
	require.NoError(t, svc.SaveObject(siren))

	require.NoError(t, svc.DeleteObject(siren.ID))
	// 第二次删除同一ID不报错
	require.NoError(t, svc.DeleteObject(siren.ID))
	// 删除从未存在过的ID也不报错
	require.NoError(t, svc.DeleteObject(9999))

	count, err := svc.CountObjects()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetObjectsByRoomScoping(t *testing.T) {
	db := setupTestDB(t)
	doorSvc := newObjectService(t, db, models.KindDoor)
	windowSvc := newObjectService(t, db, models.KindWindow)

	roomA := createTestRoom(t, db, "Room A", 4, 4, 3)
	roomB := createTestRoom(t, db, "Room B", 4, 4, 3)

	require.NoError(t, doorSvc.SaveObject(newDoor("Door A1", &roomA.ID)))
	require.NoError(t, doorSvc.SaveObject(newDoor("Door A2", &roomA.ID)))
	require.NoError(t, doorSvc.SaveObject(newDoor("Door B1", &roomB.ID)))
	require.NoError(t, windowSvc.SaveObject(newDoor("Window A1", &roomA.ID)))

	// 只返回自己种类在该房间的设备
	doors, err := doorSvc.GetObjectsByRoom(roomA.ID)
	require.NoError(t, err)
	assert.Len(t, doors, 2)

	windows, err := windowSvc.GetObjectsByRoom(roomA.ID)
	require.NoError(t, err)
	assert.Len(t, windows, 1)

	// 没有设备的房间返回空列表而不是错误
	empty, err := doorSvc.GetObjectsByRoom(8888)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetObjectsByCustomNameExactMatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindPlug)

	save := func(name string) {
		require.NoError(t, svc.SaveObject(&models.RoomObject{
			CustomName: name,
			PosX:       floatPtr(0), PosY: floatPtr(0), PosZ: floatPtr(0),
		}))
	}
	save("TV Plug")
	save("TV Plug")
	save("tv plug")
	save("TV Plug 2")

	// 精确匹配且区分大小写
	got, err := svc.GetObjectsByCustomName("TV Plug")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.GetObjectsByCustomName("tv plug")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.GetObjectsByCustomName("Missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteObjectsByCustomName(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindHeater)

	save := func(name string) {
		require.NoError(t, svc.SaveObject(&models.RoomObject{
			CustomName: name,
			PosX:       floatPtr(0), PosY: floatPtr(0), PosZ: floatPtr(0),
			SizeX:      floatPtr(1), SizeY: floatPtr(0.5), SizeZ: floatPtr(0.2),
		}))
	}
	save("X")
	save("X")
	save("X")
	save("Y")

	require.NoError(t, svc.DeleteObjectsByCustomName("X"))

	count, err := svc.CountObjects()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	remaining, err := svc.GetObjectsByCustomName("Y")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestRoomLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindDoor)

	lab := createTestRoom(t, db, "Lab", 6, 8, 3)

	door := &models.RoomObject{
		CustomName: "Lab Door",
		PosX:       floatPtr(0), PosY: floatPtr(0), PosZ: floatPtr(0),
		SizeX:      floatPtr(1), SizeY: floatPtr(2), SizeZ: floatPtr(0.5),
		RoomID:     &lab.ID,
	}
	require.NoError(t, svc.SaveObject(door))

	inRoom, err := svc.GetObjectsByRoom(lab.ID)
	require.NoError(t, err)
	require.Len(t, inRoom, 1)
	assert.Equal(t, "Lab Door", inRoom[0].CustomName)

	require.NoError(t, svc.DeleteObjectsByRoom(lab.ID))

	inRoom, err = svc.GetObjectsByRoom(lab.ID)
	require.NoError(t, err)
	assert.Empty(t, inRoom)
}

func TestMoveObjectToRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindSensorCO2)

	roomA := createTestRoom(t, db, "Room A", 4, 4, 3)
	roomB := createTestRoom(t, db, "Room B", 4, 4, 3)

	sensor := &models.RoomObject{
		CustomName: "CO2 Meter",
		PosX:       floatPtr(0), PosY: floatPtr(0), PosZ: floatPtr(2),
		RoomID:     &roomA.ID,
	}
	require.NoError(t, svc.SaveObject(sensor))

	moved, err := svc.MoveObjectToRoom(sensor.ID, roomB.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.RoomID)
	assert.Equal(t, roomB.ID, *moved.RoomID)

	// 设备不存在
	_, err = svc.MoveObjectToRoom(9999, roomB.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// 目标房间不存在
	_, err = svc.MoveObjectToRoom(sensor.ID, 9999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSaveObjectsBatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindSensor6in1)

	objs := []*models.RoomObject{
		{CustomName: "S1", PosX: floatPtr(0), PosY: floatPtr(0), PosZ: floatPtr(2)},
		{CustomName: "S2", PosX: floatPtr(1), PosY: floatPtr(1), PosZ: floatPtr(2)},
		{CustomName: "S3", PosX: floatPtr(2), PosY: floatPtr(2), PosZ: floatPtr(2)},
	}
	require.NoError(t, svc.SaveObjects(objs))

	count, err := svc.CountObjects()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSaveObjectsBatchRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindSensor9in1)

	objs := []*models.RoomObject{
		{CustomName: "OK", PosX: floatPtr(0), PosY: floatPtr(0), PosZ: floatPtr(2)},
		{CustomName: "Bad", PosX: floatPtr(0), PosY: nil, PosZ: floatPtr(2)},
	}
	err := svc.SaveObjects(objs)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// 任意一个失败则整批不落库
	count, err := svc.CountObjects()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestObjectExists(t *testing.T) {
	db := setupTestDB(t)
	svc := newObjectService(t, db, models.KindDataTable)

	table := &models.RoomObject{
		CustomName: "Standing Desk",
		PosX:       floatPtr(1), PosY: floatPtr(1), PosZ: floatPtr(0),
		SizeX:      floatPtr(1.6), SizeY: floatPtr(0.8), SizeZ: floatPtr(1.2),
	}
	require.NoError(t, svc.SaveObject(table))

	exists, err := svc.ObjectExists(table.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ObjectExists(9999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestKindsAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	doorSvc := newObjectService(t, db, models.KindDoor)
	lampSvc := newObjectService(t, db, models.KindLamp)

	require.NoError(t, doorSvc.SaveObject(newDoor("Shared Name", nil)))

	// 同名的其他种类查不到
	got, err := lampSvc.GetObjectsByCustomName("Shared Name")
	require.NoError(t, err)
	assert.Empty(t, got)

	count, err := lampSvc.CountObjects()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
