package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 建筑与房间相关错误码 (101xxx).
const (
	// ErrBuildingNotFound - 404: 建筑不存在.
	ErrBuildingNotFound int = iota + 101000
	// ErrRoomNotFound - 404: 房间不存在.
	ErrRoomNotFound
	// ErrRoomTypeNotFound - 404: 房间类型不存在.
	ErrRoomTypeNotFound
)

// 设备相关错误码 (102xxx).
const (
	// ErrObjectNotFound - 404: 设备不存在.
	ErrObjectNotFound int = iota + 102000
	// ErrObjectValidation - 400: 设备属性校验失败.
	ErrObjectValidation
	// ErrUnknownObjectKind - 404: 未知的设备种类.
	ErrUnknownObjectKind
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
