package util

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrValidation       = errors.New("validation failed")
	ErrAlreadyCompleted = errors.New("day already completed")
	ErrNoProjectIdea    = errors.New("no project idea set")
	ErrUnauthorized     = errors.New("unauthorized")
)

// GenerationError 生成服务调用失败（网络、上游错误、响应形状异常）。
// 调用方不得因此变更会话状态，只记录 warn 日志并向用户暴露失败
type GenerationError struct {
	Operation string
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s failed: %v", e.Operation, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGenerationError(operation string, err error) *GenerationError {
	return &GenerationError{Operation: operation, Err: err}
}

func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// ValidationError 带原因的校验失败
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
