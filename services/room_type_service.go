package services

import (
	"errors"

	"roominv-http-service/config"
	"roominv-http-service/models"

	"gorm.io/gorm"
)

// InterfaceRoomTypeService 定义房间类型服务接口
type InterfaceRoomTypeService interface {
	GetAllRoomTypes() ([]models.RoomType, error)
	GetRoomTypeByID(id uint) (*models.RoomType, error)
	CreateRoomType(roomType *models.RoomType) error
	UpdateRoomType(id uint, updates map[string]interface{}) (*models.RoomType, error)
	DeleteRoomType(id uint) error
}

// RoomTypeService 提供房间类型相关的服务
type RoomTypeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomTypeService 创建一个新的房间类型服务
func NewRoomTypeService(db *gorm.DB, cfg *config.Config) InterfaceRoomTypeService {
	return &RoomTypeService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllRoomTypes 获取所有房间类型
func (s *RoomTypeService) GetAllRoomTypes() ([]models.RoomType, error) {
	roomTypes := make([]models.RoomType, 0)
	if err := s.DB.Find(&roomTypes).Error; err != nil {
		return nil, err
	}
	return roomTypes, nil
}

// 2. GetRoomTypeByID 根据ID获取房间类型
func (s *RoomTypeService) GetRoomTypeByID(id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := s.DB.First(&roomType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &roomType, nil
}

// 3. CreateRoomType 创建新房间类型
func (s *RoomTypeService) CreateRoomType(roomType *models.RoomType) error {
	return s.DB.Create(roomType).Error
}

// 4. UpdateRoomType 更新房间类型
func (s *RoomTypeService) UpdateRoomType(id uint, updates map[string]interface{}) (*models.RoomType, error) {
	roomType, err := s.GetRoomTypeByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(roomType).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetRoomTypeByID(id)
}

// 5. DeleteRoomType 删除房间类型
// 房间对类型是弱引用，删除类型不影响已有房间
func (s *RoomTypeService) DeleteRoomType(id uint) error {
	roomType, err := s.GetRoomTypeByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(roomType).Error
}
