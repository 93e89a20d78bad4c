package services

import "errors"

// 服务层统一的查找失败错误，控制器据此返回404
var (
	ErrRecordNotFound = errors.New("记录不存在")
	ErrRoomNotFound   = errors.New("关联的房间不存在")
)

// ValidationError 表示保存前校验失败，控制器据此返回400
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError 创建校验错误
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidationError 判断是否为校验错误
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound 判断是否为查找失败
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrRoomNotFound)
}
