package models

// Building 表示建筑信息
type Building struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"` // 建筑名称，如"主楼"

	// 关联关系
	Rooms []Room `gorm:"foreignKey:BuildingID" json:"rooms,omitempty"` // 建筑下的房间（一对多）
}
