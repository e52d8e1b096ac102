package validation

import (
	"errors"
	"fmt"
)

// Error 表示提交的数据未通过业务校验。
// 处理器用它来区分“请求被拒绝”(400)和内部错误(500)。
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// Errorf 构造一个新的校验错误。
func Errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// IsError 判断err链上是否存在校验错误。
func IsError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
