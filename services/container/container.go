package container

import (
	"context"
	"log"
	"sync"
	"time"

	"roominv-http-service/config"
	"roominv-http-service/models"
	"roominv-http-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 数据存储服务
	redisService *services.RedisService

	// 业务服务
	buildingService services.InterfaceBuildingService
	roomTypeService services.InterfaceRoomTypeService
	roomService     services.InterfaceRoomService

	// 每种设备一个服务实例，按种类索引
	objectServices map[models.ObjectKind]services.InterfaceRoomObjectService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化Redis服务
	if c.redis != nil {
		c.redisService = &services.RedisService{
			Client: c.redis,
			Ctx:    context.Background(),
		}
	}

	// 初始化业务服务
	c.buildingService = services.NewBuildingService(c.db, c.config)
	c.roomTypeService = services.NewRoomTypeService(c.db, c.config)
	c.roomService = services.NewRoomService(c.db, c.config, c.redisService)

	// 按种类注册表初始化设备服务
	c.objectServices = make(map[models.ObjectKind]services.InterfaceRoomObjectService, len(models.ObjectKindSpecs))
	for _, spec := range models.ObjectKindSpecs {
		c.objectServices[spec.Kind] = services.NewRoomObjectService(c.db, c.config, spec)
	}
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redisService
	case "building":
		return c.buildingService
	case "room_type":
		return c.roomTypeService
	case "room":
		return c.roomService
	default:
		return nil
	}
}

// GetObjectService 获取指定种类的设备服务
func (c *ServiceContainer) GetObjectService(kind models.ObjectKind) services.InterfaceRoomObjectService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.objectServices[kind]
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
