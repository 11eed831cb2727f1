package domain

import "errors"

var (
	ErrRunNotFound     = errors.New("solve run not found")
	ErrSessionNotFound = errors.New("live session not found")
	ErrNodeNotFound    = errors.New("node not found in circuit")
)
