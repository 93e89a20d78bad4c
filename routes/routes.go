package routes

import (
	"roominv-http-service/config"
	"roominv-http-service/controllers"
	_ "roominv-http-service/docs"
	"roominv-http-service/middleware"
	"roominv-http-service/models"
	"roominv-http-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 请求ID中间件
	r.Use(middleware.RequestID())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 健康检查
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// API 路由根路径，整体限流
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())

	registerBuildingRoutes(api, container)
	registerRoomTypeRoutes(api, container)
	registerRoomRoutes(api, container)
	registerRoomObjectRoutes(api, container)
}

// registerBuildingRoutes 注册建筑路由
func registerBuildingRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	buildings := api.Group("/buildings")
	buildings.GET("", controllers.HandleBuildingFunc(container, "getBuildings"))
	buildings.GET("/:id", controllers.HandleBuildingFunc(container, "getBuilding"))
	buildings.POST("", controllers.HandleBuildingFunc(container, "createBuilding"))
	buildings.PUT("/:id", controllers.HandleBuildingFunc(container, "updateBuilding"))
	buildings.DELETE("/:id", controllers.HandleBuildingFunc(container, "deleteBuilding"))
	buildings.GET("/:id/rooms", controllers.HandleBuildingFunc(container, "getBuildingRooms"))
}

// registerRoomTypeRoutes 注册房间类型路由
func registerRoomTypeRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	roomTypes := api.Group("/room-types")
	roomTypes.GET("", controllers.HandleRoomTypeFunc(container, "getRoomTypes"))
	roomTypes.GET("/:id", controllers.HandleRoomTypeFunc(container, "getRoomType"))
	roomTypes.POST("", controllers.HandleRoomTypeFunc(container, "createRoomType"))
	roomTypes.PUT("/:id", controllers.HandleRoomTypeFunc(container, "updateRoomType"))
	roomTypes.DELETE("/:id", controllers.HandleRoomTypeFunc(container, "deleteRoomType"))
}

// registerRoomRoutes 注册房间路由
func registerRoomRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	rooms := api.Group("/rooms")
	rooms.GET("", controllers.HandleRoomFunc(container, "getRooms"))
	rooms.GET("/:id", controllers.HandleRoomFunc(container, "getRoom"))
	rooms.POST("", controllers.HandleRoomFunc(container, "createRoom"))
	rooms.PUT("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
	rooms.DELETE("/:id", controllers.HandleRoomFunc(container, "deleteRoom"))
	// 房间类型为弱引用，名称解析结果走缓存
	rooms.GET("/:id/type", middleware.Cache(), controllers.HandleRoomFunc(container, "getRoomTypeName"))
}

// registerRoomObjectRoutes 按种类注册表注册十种设备的路由
// 每种设备暴露相同形状的资源集合
func registerRoomObjectRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	for _, spec := range models.ObjectKindSpecs {
		kind := spec.Kind
		g := api.Group("/" + spec.Route)
		g.GET("", controllers.HandleRoomObjectFunc(container, kind, "getObjects"))
		g.GET("/by-room/:roomId", controllers.HandleRoomObjectFunc(container, kind, "getObjectsByRoom"))
		g.GET("/by-custom-name", controllers.HandleRoomObjectFunc(container, kind, "getObjectsByCustomName"))
		g.GET("/:id", controllers.HandleRoomObjectFunc(container, kind, "getObject"))
		g.POST("", controllers.HandleRoomObjectFunc(container, kind, "createObject"))
		g.PUT("", controllers.HandleRoomObjectFunc(container, kind, "upsertObject"))
		g.POST("/:id/room", controllers.HandleRoomObjectFunc(container, kind, "moveObjectToRoom"))
		g.DELETE("/:id", controllers.HandleRoomObjectFunc(container, kind, "deleteObject"))
		g.DELETE("/by-room/:roomId", controllers.HandleRoomObjectFunc(container, kind, "deleteObjectsByRoom"))
		g.DELETE("/by-custom-name", controllers.HandleRoomObjectFunc(container, kind, "deleteObjectsByCustomName"))
	}
}
