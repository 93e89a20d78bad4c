package controllers

import (
	"net/http"
	"strconv"

	"roominv-http-service/models"
	"roominv-http-service/services"
	"roominv-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceRoomObjectController 定义设备控制器接口
// 十种设备共用同一控制器，按 ObjectKind 参数化
type InterfaceRoomObjectController interface {
	GetObjects()
	GetObject()
	GetObjectsByRoom()
	GetObjectsByCustomName()
	CreateObject()
	UpsertObject()
	DeleteObject()
	DeleteObjectsByRoom()
	DeleteObjectsByCustomName()
	MoveObjectToRoom()
}

// RoomObjectController 处理设备相关的请求
type RoomObjectController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
	Kind      models.ObjectKind
}

// NewRoomObjectController 创建指定种类的设备控制器
func NewRoomObjectController(ctx *gin.Context, container *container.ServiceContainer, kind models.ObjectKind) *RoomObjectController {
	return &RoomObjectController{
		Ctx:       ctx,
		Container: container,
		Kind:      kind,
	}
}

// RoomObjectRequest 表示设备请求结构
// 坐标和尺寸用指针，缺失的字段由服务层校验拒绝
type RoomObjectRequest struct {
	ID         uint     `json:"id" example:"0"` // 可选，PUT时用于指定要覆盖的行
	CustomName string   `json:"custom_name" example:"Lab Door"`
	PosX       *float64 `json:"pos_x" example:"0"`
	PosY       *float64 `json:"pos_y" example:"0"`
	PosZ       *float64 `json:"pos_z" example:"0"`
	SizeX      *float64 `json:"size_x,omitempty" example:"1"`
	SizeY      *float64 `json:"size_y,omitempty" example:"2"`
	SizeZ      *float64 `json:"size_z,omitempty" example:"0.5"`
	RoomID     *uint    `json:"room_id,omitempty" example:"1"`
}

// MoveObjectRequest 移动设备到另一个房间的请求
type MoveObjectRequest struct {
	RoomID uint `json:"room_id" binding:"required" example:"2"`
}

// toModel 把请求转换为模型对象
func (r *RoomObjectRequest) toModel() *models.RoomObject {
	obj := &models.RoomObject{
		CustomName: r.CustomName,
		PosX:       r.PosX,
		PosY:       r.PosY,
		PosZ:       r.PosZ,
		SizeX:      r.SizeX,
		SizeY:      r.SizeY,
		SizeZ:      r.SizeZ,
		RoomID:     r.RoomID,
	}
	obj.ID = r.ID
	return obj
}

// HandleRoomObjectFunc 返回一个处理指定种类设备请求的Gin处理函数
func HandleRoomObjectFunc(container *container.ServiceContainer, kind models.ObjectKind, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomObjectController(ctx, container, kind)

		switch method {
		case "getObjects":
			controller.GetObjects()
		case "getObject":
			controller.GetObject()
		case "getObjectsByRoom":
			controller.GetObjectsByRoom()
		case "getObjectsByCustomName":
			controller.GetObjectsByCustomName()
		case "createObject":
			controller.CreateObject()
		case "upsertObject":
			controller.UpsertObject()
		case "deleteObject":
			controller.DeleteObject()
		case "deleteObjectsByRoom":
			controller.DeleteObjectsByRoom()
		case "deleteObjectsByCustomName":
			controller.DeleteObjectsByCustomName()
		case "moveObjectToRoom":
			controller.MoveObjectToRoom()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// service 获取当前种类的设备服务
func (c *RoomObjectController) service() services.InterfaceRoomObjectService {
	return c.Container.GetObjectService(c.Kind)
}

// handleServiceError 把服务层错误映射为HTTP响应
func (c *RoomObjectController) handleServiceError(err error, action string) {
	if services.IsNotFound(err) {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": err.Error(),
			"data":    nil,
		})
		return
	}
	if services.IsValidationError(err) {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
			"data":    nil,
		})
		return
	}
	c.Ctx.JSON(http.StatusInternalServerError, gin.H{
		"code":    500,
		"message": action + "失败: " + err.Error(),
		"data":    nil,
	})
}

// 1. GetObjects 获取该种类的所有设备
// @Summary 获取所有设备
// @Description 获取当前种类所有设备的列表
// @Tags room-object
// @Accept json
// @Produce json
// @Success 200 {array} models.RoomObject
// @Failure 500 {object} map[string]interface{}
// @Router /{kind}s [get]
func (c *RoomObjectController) GetObjects() {
	objects, err := c.service().GetAllObjects()
	if err != nil {
		c.handleServiceError(err, "获取设备列表")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    objects,
	})
}

// 2. GetObject 获取单个设备详情
// @Summary 获取单个设备
// @Description 根据ID获取设备信息
// @Tags room-object
// @Accept json
// @Produce json
// @Param id path int true "设备ID"
// @Success 200 {object} models.RoomObject
// @Failure 404 {object} map[string]interface{}
// @Router /{kind}s/{id} [get]
func (c *RoomObjectController) GetObject() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的设备ID",
			"data":    nil,
		})
		return
	}

	obj, err := c.service().GetObjectByID(uint(id))
	if err != nil {
		c.handleServiceError(err, "获取设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    obj,
	})
}

// 3. GetObjectsByRoom 获取某房间内该种类的设备
// @Summary 按房间获取设备
// @Description 获取指定房间内该种类的所有设备，房间为空时返回空列表
// @Tags room-object
// @Accept json
// @Produce json
// @Param roomId path int true "房间ID"
// @Success 200 {array} models.RoomObject
// @Failure 500 {object} map[string]interface{}
// @Router /{kind}s/by-room/{roomId} [get]
func (c *RoomObjectController) GetObjectsByRoom() {
	roomID, err := strconv.Atoi(c.Ctx.Param("roomId"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间ID",
			"data":    nil,
		})
		return
	}

	objects, err := c.service().GetObjectsByRoom(uint(roomID))
	if err != nil {
		c.handleServiceError(err, "按房间获取设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    objects,
	})
}

// 4. GetObjectsByCustomName 按自定义名称获取设备
// @Summary 按自定义名称获取设备
// @Description 按自定义名称精确匹配（区分大小写），缺少name参数返回400
// @Tags room-object
// @Accept json
// @Produce json
// @Param name query string true "自定义名称"
// @Success 200 {array} models.RoomObject
// @Failure 400 {object} map[string]interface{}
// @Router /{kind}s/by-custom-name [get]
func (c *RoomObjectController) GetObjectsByCustomName() {
	name, ok := c.Ctx.GetQuery("name")
	if !ok {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "缺少name参数",
			"data":    nil,
		})
		return
	}

	objects, err := c.service().GetObjectsByCustomName(name)
	if err != nil {
		c.handleServiceError(err, "按名称获取设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    objects,
	})
}

// 5. CreateObject 创建新设备
// @Summary 创建新设备
// @Description 创建一个新设备；请求体带id时按指定id插入
// @Tags room-object
// @Accept json
// @Produce json
// @Param object body RoomObjectRequest true "设备信息"
// @Success 201 {object} models.RoomObject
// @Failure 400 {object} map[string]interface{}
// @Router /{kind}s [post]
func (c *RoomObjectController) CreateObject() {
	var req RoomObjectRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	obj := req.toModel()

	if err := c.service().SaveObject(obj); err != nil {
		c.handleServiceError(err, "创建设备")
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    obj,
	})
}

// 6. UpsertObject 保存设备（upsert）
// @Summary 保存设备
// @Description 按请求体中的id整行覆盖，无id时新增
// @Tags room-object
// @Accept json
// @Produce json
// @Param object body RoomObjectRequest true "设备信息"
// @Success 200 {object} models.RoomObject
// @Failure 400 {object} map[string]interface{}
// @Router /{kind}s [put]
func (c *RoomObjectController) UpsertObject() {
	var req RoomObjectRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	obj := req.toModel()

	if err := c.service().SaveObject(obj); err != nil {
		c.handleServiceError(err, "保存设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    obj,
	})
}

// 7. DeleteObject 删除单个设备
// @Summary 删除设备
// @Description 根据ID删除设备；设备不存在时返回404
// @Tags room-object
// @Accept json
// @Produce json
// @Param id path int true "设备ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /{kind}s/{id} [delete]
func (c *RoomObjectController) DeleteObject() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的设备ID",
			"data":    nil,
		})
		return
	}

	// 删除本身幂等，REST层需要404信号，先检查存在性
	exists, err := c.service().ObjectExists(uint(id))
	if err != nil {
		c.handleServiceError(err, "删除设备")
		return
	}
	if !exists {
		c.Ctx.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "设备不存在",
			"data":    nil,
		})
		return
	}

	if err := c.service().DeleteObject(uint(id)); err != nil {
		c.handleServiceError(err, "删除设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    nil,
	})
}

// 8. DeleteObjectsByRoom 删除某房间内该种类的全部设备
// @Summary 按房间批量删除设备
// @Description 原子地删除指定房间内该种类的所有设备
// @Tags room-object
// @Accept json
// @Produce json
// @Param roomId path int true "房间ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /{kind}s/by-room/{roomId} [delete]
func (c *RoomObjectController) DeleteObjectsByRoom() {
	roomID, err := strconv.Atoi(c.Ctx.Param("roomId"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间ID",
			"data":    nil,
		})
		return
	}

	if err := c.service().DeleteObjectsByRoom(uint(roomID)); err != nil {
		c.handleServiceError(err, "按房间删除设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    nil,
	})
}

// 9. DeleteObjectsByCustomName 按自定义名称批量删除设备
// @Summary 按自定义名称批量删除设备
// @Description 原子地删除所有名称精确匹配的设备，缺少customName参数返回400
// @Tags room-object
// @Accept json
// @Produce json
// @Param customName query string true "自定义名称"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /{kind}s/by-custom-name [delete]
func (c *RoomObjectController) DeleteObjectsByCustomName() {
	name, ok := c.Ctx.GetQuery("customName")
	if !ok {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "缺少customName参数",
			"data":    nil,
		})
		return
	}

	if err := c.service().DeleteObjectsByCustomName(name); err != nil {
		c.handleServiceError(err, "按名称删除设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    nil,
	})
}

// 10. MoveObjectToRoom 把设备移动到另一个房间
// @Summary 移动设备
// @Description 把设备移动到指定房间，设备或房间不存在时返回404
// @Tags room-object
// @Accept json
// @Produce json
// @Param id path int true "设备ID"
// @Param request body MoveObjectRequest true "目标房间"
// @Success 200 {object} models.RoomObject
// @Failure 404 {object} map[string]interface{}
// @Router /{kind}s/{id}/room [post]
func (c *RoomObjectController) MoveObjectToRoom() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的设备ID",
			"data":    nil,
		})
		return
	}

	var req MoveObjectRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	obj, err := c.service().MoveObjectToRoom(uint(id), req.RoomID)
	if err != nil {
		c.handleServiceError(err, "移动设备")
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    obj,
	})
}
