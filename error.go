package uvc

import "errors"

var (
	ErrNoDevice            = errors.New("no UVC device")
	ErrNoControlInterface  = errors.New("video control interface not found")
	ErrControlNotFound     = errors.New("control not found")
	ErrControlNotAvailable = errors.New("control not available on this device")
	ErrNoDefault           = errors.New("control has no default value")
	ErrNotSupported        = errors.New("request not supported by control")
	ErrShortTransfer       = errors.New("short control transfer")
	ErrClosed              = errors.New("device controller closed")
)
