package engine

import (
	"errors"
	"fmt"
)

// 错误分类，配合 errors.Is 使用
var (
	ErrIllegalAction        = errors.New("illegal action")
	ErrInsufficientSupply   = errors.New("insufficient supply")
	ErrOverTokenLimit       = errors.New("over token limit")
	ErrInvalidCardReference = errors.New("invalid card reference")
	ErrDeckExhausted        = errors.New("deck exhausted")
)

// EngineError 被拒绝的命令不会修改任何状态，Reason 可以直接展示给玩家
type EngineError struct {
	Kind   error
	Reason string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
}

func (e *EngineError) Unwrap() error {
	return e.Kind
}

func illegal(format string, args ...interface{}) error {
	return &EngineError{Kind: ErrIllegalAction, Reason: fmt.Sprintf(format, args...)}
}

func newError(kind error, format string, args ...interface{}) error {
	return &EngineError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Reason 取出可展示的原因，非引擎错误直接返回 err.Error()
func Reason(err error) string {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Reason
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
