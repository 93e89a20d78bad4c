package controllers

import (
	"net/http"
	"strconv"

	"roominv-http-service/models"
	"roominv-http-service/services"
	"roominv-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceBuildingController 定义建筑控制器接口
type InterfaceBuildingController interface {
	GetBuildings()
	GetBuilding()
	CreateBuilding()
	UpdateBuilding()
	DeleteBuilding()
	GetBuildingRooms()
}

// BuildingController 处理建筑相关的请求
type BuildingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBuildingController 创建一个新的建筑控制器
func NewBuildingController(ctx *gin.Context, container *container.ServiceContainer) *BuildingController {
	return &BuildingController{
		Ctx:       ctx,
		Container: container,
	}
}

// BuildingRequest 表示建筑请求结构
type BuildingRequest struct {
	Name string `json:"name" binding:"required" example:"主楼"`
}

// HandleBuildingFunc 返回一个处理建筑请求的Gin处理函数
func HandleBuildingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBuildingController(ctx, container)

		switch method {
		case "getBuildings":
			controller.GetBuildings()
		case "getBuilding":
			controller.GetBuilding()
		case "createBuilding":
			controller.CreateBuilding()
		case "updateBuilding":
			controller.UpdateBuilding()
		case "deleteBuilding":
			controller.DeleteBuilding()
		case "getBuildingRooms":
			controller.GetBuildingRooms()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// 1. GetBuildings 获取所有建筑列表
// @Summary 获取所有建筑
// @Description 获取所有建筑的列表，支持分页
// @Tags building
// @Accept json
// @Produce json
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认20"
// @Success 200 {array} models.Building
// @Failure 500 {object} map[string]interface{}
// @Router /buildings [get]
func (c *BuildingController) GetBuildings() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)

	buildings, total, err := buildingService.GetAllBuildings(page, pageSize)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取建筑列表失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data": gin.H{
			"items":      buildings,
			"pagination": models.NewPaginationResult(int(total), page, pageSize),
		},
	})
}

// 2. GetBuilding 获取单个建筑详情
// @Summary 获取单个建筑
// @Description 根据ID获取建筑信息
// @Tags building
// @Accept json
// @Produce json
// @Param id path int true "建筑ID"
// @Success 200 {object} models.Building
// @Failure 404 {object} map[string]interface{}
// @Router /buildings/{id} [get]
func (c *BuildingController) GetBuilding() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的建筑ID",
			"data":    nil,
		})
		return
	}

	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)

	building, err := buildingService.GetBuildingByID(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "建筑不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取建筑失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    building,
	})
}

// 3. CreateBuilding 创建新建筑
// @Summary 创建新建筑
// @Description 创建一个新的建筑
// @Tags building
// @Accept json
// @Produce json
// @Param building body BuildingRequest true "建筑信息"
// @Success 201 {object} models.Building
// @Failure 400 {object} map[string]interface{}
// @Router /buildings [post]
func (c *BuildingController) CreateBuilding() {
	var req BuildingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	building := &models.Building{
		Name: req.Name,
	}

	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)

	if err := buildingService.CreateBuilding(building); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "创建建筑失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    building,
	})
}

// 4. UpdateBuilding 更新建筑信息
// @Summary 更新建筑信息
// @Description 根据ID更新建筑信息
// @Tags building
// @Accept json
// @Produce json
// @Param id path int true "建筑ID"
// @Param building body BuildingRequest true "建筑信息"
// @Success 200 {object} models.Building
// @Failure 404 {object} map[string]interface{}
// @Router /buildings/{id} [put]
func (c *BuildingController) UpdateBuilding() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的建筑ID",
			"data":    nil,
		})
		return
	}

	var req BuildingRequest
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

	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)

	building, err := buildingService.UpdateBuilding(uint(id), updates)
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "建筑不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "更新建筑失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    building,
	})
}

// 5. DeleteBuilding 删除建筑
// @Summary 删除建筑
// @Description 根据ID删除建筑，不级联删除建筑下的房间
// @Tags building
// @Accept json
// @Produce json
// @Param id path int true "建筑ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /buildings/{id} [delete]
func (c *BuildingController) DeleteBuilding() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的建筑ID",
			"data":    nil,
		})
		return
	}

	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)

	if err := buildingService.DeleteBuilding(uint(id)); err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "建筑不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "删除建筑失败: " + err.Error(),
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

// 6. GetBuildingRooms 获取建筑下的房间
// @Summary 获取建筑下的房间
// @Description 根据建筑ID获取其下所有房间
// @Tags building
// @Accept json
// @Produce json
// @Param id path int true "建筑ID"
// @Success 200 {array} models.Room
// @Failure 404 {object} map[string]interface{}
// @Router /buildings/{id}/rooms [get]
func (c *BuildingController) GetBuildingRooms() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的建筑ID",
			"data":    nil,
		})
		return
	}

	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)

	rooms, err := buildingService.GetBuildingRooms(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "建筑不存在",
				"data":    nil,
			})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取建筑房间失败: " + err.Error(),
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
