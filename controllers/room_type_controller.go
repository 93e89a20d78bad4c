package controllers

import (
	"net/http"
	"strconv"

	"roominv-http-service/models"
	"roominv-http-service/services"
	"roominv-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceRoomTypeController 定义房间类型控制器接口
type InterfaceRoomTypeController interface {
	GetRoomTypes()
	GetRoomType()
	CreateRoomType()
	UpdateRoomType()
	DeleteRoomType()
}

// RoomTypeController 处理房间类型相关的请求
type RoomTypeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomTypeController 创建一个新的房间类型控制器
func NewRoomTypeController(ctx *gin.Context, container *container.ServiceContainer) *RoomTypeController {
	return &RoomTypeController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomTypeRequest 表示房间类型请求结构
type RoomTypeRequest struct {
	Name string `json:"name" binding:"required" example:"Laboratory"`
}

// HandleRoomTypeFunc 返回一个处理房间类型请求的Gin处理函数
func HandleRoomTypeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomTypeController(ctx, container)

		switch method {
		case "getRoomTypes":
			controller.GetRoomTypes()
		case "getRoomType":
			controller.GetRoomType()
		case "createRoomType":
			controller.CreateRoomType()
		case "updateRoomType":
			controller.UpdateRoomType()
		case "deleteRoomType":
			controller.DeleteRoomType()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1. GetRoomTypes 获取所有房间类型
// @Summary 获取所有房间类型
// @Description 获取所有房间类型的列表
// @Tags room-type
// @Accept json
// @Produce json
// @Success 200 {array} models.RoomType
// @Failure 500 {object} map[string]interface{}
// @Router /room-types [get]
func (c *RoomTypeController) GetRoomTypes() {
	roomTypeService := c.Container.GetService("room_type").(services.InterfaceRoomTypeService)

	roomTypes, err := roomTypeService.GetAllRoomTypes()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取房间类型列表失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    roomTypes,
	})
}

// 2. GetRoomType 获取单个房间类型
// @Summary 获取单个房间类型
// @Description 根据ID获取房间类型
// @Tags room-type
// @Accept json
// @Produce json
// @Param id path int true "房间类型ID"
// @Success 200 {object} models.RoomType
// @Failure 404 {object} map[string]interface{}
// @Router /room-types/{id} [get]
func (c *RoomTypeController) GetRoomType() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间类型ID",
			"data":    nil,
		})
		return
	}

	roomTypeService := c.Container.GetService("room_type").(services.InterfaceRoomTypeService)

	roomType, err := roomTypeService.GetRoomTypeByID(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "房间类型不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取房间类型失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    roomType,
	})
}

// 3. CreateRoomType 创建新房间类型
// @Summary 创建新房间类型
// @Description 创建一个新的房间类型
// @Tags room-type
// @Accept json
// @Produce json
// @Param roomType body RoomTypeRequest true "房间类型信息"
// @Success 201 {object} models.RoomType
// @Failure 400 {object} map[string]interface{}
// @Router /room-types [post]
func (c *RoomTypeController) CreateRoomType() {
	var req RoomTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	roomType := &models.RoomType{
		Name: req.Name,
	}

	roomTypeService := c.Container.GetService("room_type").(services.InterfaceRoomTypeService)

	if err := roomTypeService.CreateRoomType(roomType); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "创建房间类型失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    roomType,
	})
}

// 4. UpdateRoomType 更新房间类型
// @Summary 更新房间类型
// @Description 根据ID更新房间类型
// @Tags room-type
// @Accept json
// @Produce json
// @Param id path int true "房间类型ID"
// @Param roomType body RoomTypeRequest true "房间类型信息"
// @Success 200 {object} models.RoomType
// @Failure 404 {object} map[string]interface{}
// @Router /room-types/{id} [put]
func (c *RoomTypeController) UpdateRoomType() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间类型ID",
			"data":    nil,
		})
		return
	}

	var req RoomTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	updates := map[string]interface{}{
		"name": req.Name,
	}

	roomTypeService := c.Container.GetService("room_type").(services.InterfaceRoomTypeService)

	roomType, err := roomTypeService.UpdateRoomType(uint(id), updates)
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "房间类型不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "更新房间类型失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    roomType,
	})
}

// 5. DeleteRoomType 删除房间类型
// @Summary 删除房间类型
// @Description 根据ID删除房间类型，不影响引用它的房间
// @Tags room-type
// @Accept json
// @Produce json
// @Param id path int true "房间类型ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /room-types/{id} [delete]
func (c *RoomTypeController) DeleteRoomType() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间类型ID",
			"data":    nil,
		})
		return
	}

	roomTypeService := c.Container.GetService("room_type").(services.InterfaceRoomTypeService)

	if err := roomTypeService.DeleteRoomType(uint(id)); err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "房间类型不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "删除房间类型失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    nil,
	})
}
