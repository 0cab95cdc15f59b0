package errors

import (
	"errors"
	"fmt"
)

// 預定義錯誤類型
var (
	// 配置相關
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrConfigInvalid  = errors.New("configuration is invalid")

	// 單元相關
	ErrNoSelection    = errors.New("no unit selected")
	ErrInvalidAction  = errors.New("invalid unit action")
	ErrUnitListFailed = errors.New("failed to list units")

	// 系統相關
	ErrCommandNotFound = errors.New("command not found")
	ErrCommandFailed   = errors.New("command execution failed")
	ErrDBusUnavailable = errors.New("systemd dbus is unavailable")
)

// Error 自定義錯誤類型
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 創建新錯誤
func New(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap 包裝錯誤
func Wrap(err error, code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
