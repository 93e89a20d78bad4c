package models

// Room 表示建筑内的一个房间
type Room struct {
	BaseModel
	Name   string  `gorm:"type:varchar(100);not null" json:"name"`
	Width  float64 `json:"width"`  // 宽（米）
	Length float64 `json:"length"` // 长（米）
	Height float64 `json:"height"` // 高（米）

	BuildingID uint      `gorm:"index" json:"building_id"` // 所属建筑（一个房间只属于一个建筑）
	Building   *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`

	// 房间类型为弱引用：只存id，不建立外键约束
	RoomTypeID *uint `gorm:"index" json:"room_type_id,omitempty"`
}
