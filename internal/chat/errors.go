package chat

import "errors"

var (
	ErrEmptyMessage       = errors.New("message is empty")
	ErrQuickActionUnknown = errors.New("unknown quick action")
	ErrQuickActionInput   = errors.New("quick action needs completion text")
)
