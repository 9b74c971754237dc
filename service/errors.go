package service

import (
	"errors"
	"fmt"

	"EcomCredits/types"
)

// ValidationError 本地校验失败：非法数额、未知流水类型、余额不足等
// 不可重试，原样返回给调用方
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, a ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UnknownEventError 奖励引擎收到无法识别的事件类型
type UnknownEventError struct {
	Kind types.RewardKind
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("未知的奖励事件类型: %s", e.Kind)
}

func IsUnknownEvent(err error) bool {
	var ue *UnknownEventError
	return errors.As(err, &ue)
}
