package controller

import (
	m "github.com/mouse-blink/party/internal/model"
)

// Message types.
type progressMsg struct {
	progress m.ScanProgress
}

type finishMsg struct{}
