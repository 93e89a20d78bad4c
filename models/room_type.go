package models

// RoomType 表示房间类型，如"Laboratory"
// 房间通过 room_type_id 弱引用房间类型，需要名称时显式查询
type RoomType struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
