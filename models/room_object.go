package models

// ObjectKind represents one kind of equipment installed in a room
type ObjectKind string

const (
	KindDoor       ObjectKind = "door"
	KindWindow     ObjectKind = "window"
	KindLamp       ObjectKind = "lamp"
	KindHeater     ObjectKind = "heater"
	KindPlug       ObjectKind = "plug"
	KindSiren      ObjectKind = "siren"
	KindSensor6in1 ObjectKind = "sensor6in1"
	KindSensor9in1 ObjectKind = "sensor9in1"
	KindSensorCO2  ObjectKind = "sensorco2"
	KindDataTable  ObjectKind = "datatable"
)

// RoomObject represents a piece of equipment positioned inside a room.
// 十种设备共用同一结构，按 KindSpec 分表存储；
// 位置和尺寸用指针区分"缺失"和"0"
type RoomObject struct {
	BaseModel
	CustomName string `gorm:"type:varchar(100)" json:"custom_name"`

	PosX *float64 `json:"pos_x"`
	PosY *float64 `json:"pos_y"`
	PosZ *float64 `json:"pos_z"`

	// 仅带尺寸的设备（门、窗、暖气、桌子）使用
	SizeX *float64 `json:"size_x,omitempty"`
	SizeY *float64 `json:"size_y,omitempty"`
	SizeZ *float64 `json:"size_z,omitempty"`

	RoomID *uint `gorm:"index" json:"room_id,omitempty"` // 所属房间，未分配时为空
	Room   *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// KindSpec 每种设备的配置：表名、路由段、是否带尺寸以及尺寸上限
type KindSpec struct {
	Kind  ObjectKind
	Table string
	Route string // URL集合段，如 "doors"
	Sized bool
	// 尺寸上限（仅 Sized 为 true 时有意义）
	MaxSizeX float64
	MaxSizeY float64
	MaxSizeZ float64
}

// ObjectKindSpecs 设备种类注册表，新增种类只需在此添加一行
var ObjectKindSpecs = []KindSpec{
	{Kind: KindDoor, Table: "doors", Route: "doors", Sized: true, MaxSizeX: 10, MaxSizeY: 5, MaxSizeZ: 1},
	{Kind: KindWindow, Table: "windows", Route: "windows", Sized: true, MaxSizeX: 10, MaxSizeY: 5, MaxSizeZ: 1},
	{Kind: KindLamp, Table: "lamps", Route: "lamps"},
	{Kind: KindHeater, Table: "heaters", Route: "heaters", Sized: true, MaxSizeX: 5, MaxSizeY: 2, MaxSizeZ: 2},
	{Kind: KindPlug, Table: "plugs", Route: "plugs"},
	{Kind: KindSiren, Table: "sirens", Route: "sirens"},
	{Kind: KindSensor6in1, Table: "sensor_6in1s", Route: "sensor6in1s"},
	{Kind: KindSensor9in1, Table: "sensor_9in1s", Route: "sensor9in1s"},
	{Kind: KindSensorCO2, Table: "sensor_co2s", Route: "sensorco2s"},
	{Kind: KindDataTable, Table: "data_tables", Route: "datatables", Sized: true, MaxSizeX: 10, MaxSizeY: 10, MaxSizeZ: 3},
}

// SpecForKind 根据种类查找配置
func SpecForKind(kind ObjectKind) (KindSpec, bool) {
	for _, spec := range ObjectKindSpecs {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return KindSpec{}, false
}
