package services

import (
	"errors"
	"fmt"
	"time"

	"roominv-http-service/config"
	"roominv-http-service/models"

	"gorm.io/gorm"
)

// 房间类型名称的缓存时间
const roomTypeCacheTTL = 10 * time.Minute

// InterfaceRoomService 定义房间服务接口
type InterfaceRoomService interface {
	GetAllRooms() ([]models.Room, error)
	GetRoomByID(id uint) (*models.Room, error)
	GetRoomsByBuilding(buildingID uint) ([]models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(id uint) error
	ResolveRoomTypeName(room *models.Room) (string, error)
}

// RoomService 提供房间相关的服务
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService // 可为空，为空时直接查库
}

// NewRoomService 创建一个新的房间服务
func NewRoomService(db *gorm.DB, cfg *config.Config, redisService *RedisService) InterfaceRoomService {
	return &RoomService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// 1. GetAllRooms 获取所有房间列表
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// 2. GetRoomByID 根据ID获取房间
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &room, nil
}

// 3. GetRoomsByBuilding 根据建筑获取房间列表
func (s *RoomService) GetRoomsByBuilding(buildingID uint) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := s.DB.Where("building_id = ?", buildingID).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// 4. CreateRoom 创建新房间
func (s *RoomService) CreateRoom(room *models.Room) error {
	// 检查所属建筑是否存在
	if room.BuildingID != 0 {
		var count int64
		if err := s.DB.Model(&models.Building{}).Where("id = ?", room.BuildingID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrRecordNotFound
		}
	}

	return s.DB.Create(room).Error
}

// 5. UpdateRoom 更新房间信息
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetRoomByID(id)
}

// 6. DeleteRoom 删除房间
// 注意：不级联删除房间内的设备，调用方需要先对每种设备调用按房间批量删除
func (s *RoomService) DeleteRoom(id uint) error {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(room).Error
}

// 7. ResolveRoomTypeName 解析房间类型名称（弱引用查询，结果走缓存）
func (s *RoomService) ResolveRoomTypeName(room *models.Room) (string, error) {
	if room == nil || room.RoomTypeID == nil {
		return "", nil
	}

	cacheKey := fmt.Sprintf("room_type_name:%d", *room.RoomTypeID)
	if s.Redis != nil {
		var cached string
		if err := s.Redis.Get(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, *room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRecordNotFound
		}
		return "", err
	}

	if s.Redis != nil {
		// 缓存失败不影响主流程
		_ = s.Redis.Set(cacheKey, roomType.Name, roomTypeCacheTTL)
	}

	return roomType.Name, nil
}
