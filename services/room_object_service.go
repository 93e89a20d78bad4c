package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"roominv-http-service/config"
	"roominv-http-service/models"

	"gorm.io/gorm"
)

// 校验失败原因，与前端约定的固定文案
const (
	reasonNilObject  = "object must not be nil"
	reasonPosition   = "position must be non-negative"
	reasonDimension  = "dimension out of bounds"
	reasonCustomName = "invalid custom name"

	maxCustomNameLen = 100
)

// InterfaceRoomObjectService 定义房间设备服务接口
// 十种设备共用同一实现，按 KindSpec 配置分表
type InterfaceRoomObjectService interface {
	Kind() models.ObjectKind
	GetAllObjects() ([]models.RoomObject, error)
	GetObjectByID(id uint) (*models.RoomObject, error)
	GetObjectsByRoom(roomID uint) ([]models.RoomObject, error)
	GetObjectsByCustomName(name string) ([]models.RoomObject, error)
	SaveObject(obj *models.RoomObject) error
	SaveObjects(objs []*models.RoomObject) error
	DeleteObject(id uint) error
	DeleteObjectsByRoom(roomID uint) error
	DeleteObjectsByCustomName(name string) error
	MoveObjectToRoom(id, roomID uint) (*models.RoomObject, error)
	ObjectExists(id uint) (bool, error)
	CountObjects() (int64, error)
}

// RoomObjectService 提供某一种设备的增删改查服务
type RoomObjectService struct {
	DB     *gorm.DB
	Config *config.Config
	Spec   models.KindSpec
}

// NewRoomObjectService 创建指定种类的设备服务
func NewRoomObjectService(db *gorm.DB, cfg *config.Config, spec models.KindSpec) InterfaceRoomObjectService {
	return &RoomObjectService{
		DB:     db,
		Config: cfg,
		Spec:   spec,
	}
}

// Kind 返回服务对应的设备种类
func (s *RoomObjectService) Kind() models.ObjectKind {
	return s.Spec.Kind
}

// table 返回当前种类对应表的查询入口
func (s *RoomObjectService) table(db *gorm.DB) *gorm.DB {
	return db.Table(s.Spec.Table)
}

// 1. GetAllObjects 获取该种类的所有设备
func (s *RoomObjectService) GetAllObjects() ([]models.RoomObject, error) {
	objects := make([]models.RoomObject, 0)
	if err := s.table(s.DB).Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

// 2. GetObjectByID 根据ID获取设备
func (s *RoomObjectService) GetObjectByID(id uint) (*models.RoomObject, error) {
	var obj models.RoomObject
	if err := s.table(s.DB).Where("id = ?", id).First(&obj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &obj, nil
}

// 3. GetObjectsByRoom 获取某房间内该种类的所有设备，房间为空时返回空列表
func (s *RoomObjectService) GetObjectsByRoom(roomID uint) ([]models.RoomObject, error) {
	objects := make([]models.RoomObject, 0)
	if err := s.table(s.DB).Where("room_id = ?", roomID).Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

// 4. GetObjectsByCustomName 按自定义名称精确匹配（区分大小写）
func (s *RoomObjectService) GetObjectsByCustomName(name string) ([]models.RoomObject, error) {
	objects := make([]models.RoomObject, 0)
	if err := s.table(s.DB).Where("custom_name = ?", name).Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

// 5. SaveObject 保存设备：无ID则新增，有ID则整行覆盖（upsert）
func (s *RoomObjectService) SaveObject(obj *models.RoomObject) error {
	if err := s.validateObject(obj); err != nil {
		return err
	}

	// 房间引用必须指向已存在的房间
	if obj.RoomID != nil {
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("id = ?", *obj.RoomID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrRoomNotFound
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.saveObjectTx(tx, obj)
	})
}

// saveObjectTx 在事务内执行单个设备的upsert
func (s *RoomObjectService) saveObjectTx(tx *gorm.DB, obj *models.RoomObject) error {
	if obj.ID == 0 {
		return s.table(tx).Create(obj).Error
	}

	var count int64
	if err := s.table(tx).Where("id = ?", obj.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		// 指定ID插入
		return s.table(tx).Create(obj).Error
	}
	return s.table(tx).Save(obj).Error
}

// 6. SaveObjects 批量保存，任意一个失败则整批回滚
func (s *RoomObjectService) SaveObjects(objs []*models.RoomObject) error {
	for _, obj := range objs {
		if err := s.validateObject(obj); err != nil {
			return err
		}
		if obj.RoomID != nil {
			var count int64
			if err := s.DB.Model(&models.Room{}).Where("id = ?", *obj.RoomID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrRoomNotFound
			}
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, obj := range objs {
			if err := s.saveObjectTx(tx, obj); err != nil {
				return err
			}
		}
		return nil
	})
}

// 7. DeleteObject 根据ID删除设备，ID不存在时不报错（幂等删除）
func (s *RoomObjectService) DeleteObject(id uint) error {
	return s.table(s.DB).Where("id = ?", id).Delete(&models.RoomObject{}).Error
}

// 8. DeleteObjectsByRoom 删除某房间内该种类的全部设备
// 必须在单个事务内完成，避免并发读取到部分删除的结果
func (s *RoomObjectService) DeleteObjectsByRoom(roomID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.table(tx).Where("room_id = ?", roomID).Delete(&models.RoomObject{}).Error
	})
}

// 9. DeleteObjectsByCustomName 按自定义名称精确匹配批量删除，同样要求原子性
func (s *RoomObjectService) DeleteObjectsByCustomName(name string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.table(tx).Where("custom_name = ?", name).Delete(&models.RoomObject{}).Error
	})
}

// 10. MoveObjectToRoom 把设备移动到另一个房间
func (s *RoomObjectService) MoveObjectToRoom(id, roomID uint) (*models.RoomObject, error) {
	if _, err := s.GetObjectByID(id); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRoomNotFound
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.table(tx).Where("id = ?", id).Update("room_id", roomID).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetObjectByID(id)
}

// 11. ObjectExists 判断ID是否存在
func (s *RoomObjectService) ObjectExists(id uint) (bool, error) {
	var count int64
	if err := s.table(s.DB).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// 12. CountObjects 统计该种类的设备数量
func (s *RoomObjectService) CountObjects() (int64, error) {
	var count int64
	if err := s.table(s.DB).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// validateObject 保存前校验，对所有种类统一执行：
// 坐标必须存在且非负；带尺寸的种类尺寸必须存在、为正且不超过各自上限；
// 自定义名称如果填写，去除空白后不能为空且不超过100个字符
func (s *RoomObjectService) validateObject(obj *models.RoomObject) error {
	if obj == nil {
		return NewValidationError(reasonNilObject)
	}

	for _, pos := range []*float64{obj.PosX, obj.PosY, obj.PosZ} {
		if pos == nil || *pos < 0 {
			return NewValidationError(reasonPosition)
		}
	}

	if s.Spec.Sized {
		bounds := []struct {
			value *float64
			max   float64
		}{
			{obj.SizeX, s.Spec.MaxSizeX},
			{obj.SizeY, s.Spec.MaxSizeY},
			{obj.SizeZ, s.Spec.MaxSizeZ},
		}
		for _, b := range bounds {
			if b.value == nil || *b.value <= 0 || *b.value > b.max {
				return NewValidationError(reasonDimension)
			}
		}
	} else {
		// 不带尺寸的种类忽略传入的尺寸字段
		obj.SizeX = nil
		obj.SizeY = nil
		obj.SizeZ = nil
	}

	if obj.CustomName != "" {
		trimmed := strings.TrimSpace(obj.CustomName)
		if trimmed == "" || utf8.RuneCountInString(obj.CustomName) > maxCustomNameLen {
			return NewValidationError(reasonCustomName)
		}
	}

	return nil
}
