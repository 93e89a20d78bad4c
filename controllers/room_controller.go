package controllers

import (
	"net/http"
	"strconv"

	"roominv-http-service/models"
	"roominv-http-service/services"
	"roominv-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceRoomController 定义房间控制器接口
type InterfaceRoomController interface {
	GetRooms()
	GetRoom()
	CreateRoom()
	UpdateRoom()
	DeleteRoom()
	GetRoomTypeName()
}

// RoomController 处理房间相关的请求
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController 创建一个新的房间控制器
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomRequest 表示房间请求结构
type RoomRequest struct {
	Name       string  `json:"name" binding:"required" example:"Lab"`
	Width      float64 `json:"width" example:"6"`
	Length     float64 `json:"length" example:"8"`
	Height     float64 `json:"height" example:"3"`
	BuildingID uint    `json:"building_id" example:"1"`
	RoomTypeID *uint   `json:"room_type_id" example:"2"`
}

// HandleRoomFunc 返回一个处理房间请求的Gin处理函数
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		case "getRoomTypeName":
			controller.GetRoomTypeName()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1. GetRooms 获取所有房间列表
// @Summary 获取所有房间
// @Description 获取所有房间的列表
// @Tags room
// @Accept json
// @Produce json
// @Success 200 {array} models.Room
// @Failure 500 {object} map[string]interface{}
// @Router /rooms [get]
func (c *RoomController) GetRooms() {
	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	rooms, err := roomService.GetAllRooms()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取房间列表失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    rooms,
	})
}

// 2. GetRoom 获取单个房间详情
// @Summary 获取单个房间
// @Description 根据ID获取房间信息
// @Tags room
// @Accept json
// @Produce json
// @Param id path int true "房间ID"
// @Success 200 {object} models.Room
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间ID",
			"data":    nil,
		})
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	room, err := roomService.GetRoomByID(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "房间不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取房间失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    room,
	})
}

// 3. CreateRoom 创建新房间
// @Summary 创建新房间
// @Description 创建一个新的房间，需要提供名称、尺寸和所属建筑
// @Tags room
// @Accept json
// @Produce json
// @Param room body RoomRequest true "房间信息"
// @Success 201 {object} models.Room
// @Failure 400 {object} map[string]interface{}
// @Router /rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	room := &models.Room{
		Name:       req.Name,
		Width:      req.Width,
		Length:     req.Length,
		Height:     req.Height,
		BuildingID: req.BuildingID,
		RoomTypeID: req.RoomTypeID,
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	if err := roomService.CreateRoom(room); err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "所属建筑不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "创建房间失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    room,
	})
}

// 4. UpdateRoom 更新房间信息
// @Summary 更新房间信息
// @Description 根据ID更新房间信息
// @Tags room
// @Accept json
// @Produce json
// @Param id path int true "房间ID"
// @Param room body RoomRequest true "房间信息"
// @Success 200 {object} models.Room
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间ID",
			"data":    nil,
		})
		return
	}

	var req RoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"width":       req.Width,
		"length":      req.Length,
		"height":      req.Height,
		"building_id": req.BuildingID,
	}
	if req.RoomTypeID != nil {
		updates["room_type_id"] = *req.RoomTypeID
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	room, err := roomService.UpdateRoom(uint(id), updates)
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "房间不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "更新房间失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    room,
	})
}

// 5. DeleteRoom 删除房间
// @Summary 删除房间
// @Description 根据ID删除房间。不级联删除房间内的设备，
// 需要先对每种设备调用 DELETE /{kind}s/by-room/{roomId} 清理
// @Tags room
// @Accept json
// @Produce json
// @Param id path int true "房间ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间ID",
			"data":    nil,
		})
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	if err := roomService.DeleteRoom(uint(id)); err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "房间不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "删除房间失败: " + err.Error(),
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

// 6. GetRoomTypeName 获取房间类型名称
// @Summary 获取房间类型名称
// @Description 解析房间弱引用的类型ID并返回类型名称
// @Tags room
// @Accept json
// @Produce json
// @Param id path int true "房间ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{id}/type [get]
func (c *RoomController) GetRoomTypeName() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的房间ID",
			"data":    nil,
		})
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	room, err := roomService.GetRoomByID(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "房间不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取房间失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	typeName, err := roomService.ResolveRoomTypeName(room)
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
			"message": "解析房间类型失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data": gin.H{
			"room_id":      room.ID,
			"room_type_id": room.RoomTypeID,
			"type_name":    typeName,
		},
	})
}
