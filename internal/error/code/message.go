package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTooManyRequests: "请求频率过高，请稍后再试",

	// 建筑与房间相关错误码
	ErrBuildingNotFound: "建筑不存在",
	ErrRoomNotFound:     "房间不存在",
	ErrRoomTypeNotFound: "房间类型不存在",

	// 设备相关错误码
	ErrObjectNotFound:    "设备不存在",
	ErrObjectValidation:  "设备属性校验失败",
	ErrUnknownObjectKind: "未知的设备种类",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// 建筑与房间相关错误码
	ErrBuildingNotFound: StatusNotFound,
	ErrRoomNotFound:     StatusNotFound,
	ErrRoomTypeNotFound: StatusNotFound,

	// 设备相关错误码
	ErrObjectNotFound:    StatusNotFound,
	ErrObjectValidation:  StatusBadRequest,
	ErrUnknownObjectKind: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(errorCode int) string {
	if message, ok := codeMessageMap[errorCode]; ok {
		return message
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
