package services

import (
	"errors"

	"roominv-http-service/config"
	"roominv-http-service/models"

	"gorm.io/gorm"
)

// InterfaceBuildingService 定义建筑服务接口
type InterfaceBuildingService interface {
	GetAllBuildings(page, pageSize int) ([]models.Building, int64, error)
	GetBuildingByID(id uint) (*models.Building, error)
	CreateBuilding(building *models.Building) error
	UpdateBuilding(id uint, updates map[string]interface{}) (*models.Building, error)
	DeleteBuilding(id uint) error
	GetBuildingRooms(buildingID uint) ([]models.Room, error)
}

// BuildingService 提供建筑相关的服务
type BuildingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBuildingService 创建一个新的建筑服务
func NewBuildingService(db *gorm.DB, cfg *config.Config) InterfaceBuildingService {
	return &BuildingService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllBuildings 获取所有建筑列表，支持分页
func (s *BuildingService) GetAllBuildings(page, pageSize int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	// 获取总数
	if err := s.DB.Model(&models.Building{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&buildings).Error; err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}

// 2. GetBuildingByID 根据ID获取建筑
func (s *BuildingService) GetBuildingByID(id uint) (*models.Building, error) {
	var building models.Building
	if err := s.DB.First(&building, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &building, nil
}

// 3. CreateBuilding 创建新建筑
func (s *BuildingService) CreateBuilding(building *models.Building) error {
	return s.DB.Create(building).Error
}

// 4. UpdateBuilding 更新建筑信息
func (s *BuildingService) UpdateBuilding(id uint, updates map[string]interface{}) (*models.Building, error) {
	building, err := s.GetBuildingByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(building).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的建筑信息
	return s.GetBuildingByID(id)
}

// 5. DeleteBuilding 删除建筑
// 注意：不级联删除建筑下的房间
func (s *BuildingService) DeleteBuilding(id uint) error {
	building, err := s.GetBuildingByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(building).Error
}

// 6. GetBuildingRooms 获取建筑下的房间
func (s *BuildingService) GetBuildingRooms(buildingID uint) ([]models.Room, error) {
	// 检查建筑是否存在
	if _, err := s.GetBuildingByID(buildingID); err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0)
	if err := s.DB.Where("building_id = ?", buildingID).Find(&rooms).Error; err != nil {
		return nil, err
	}

	return rooms, nil
}
