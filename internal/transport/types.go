package transport

import (
	"context"

	"moviehub/internal/player"
)

// Transport layer types for Wails API

// SkipIntroRequest carries the player state the skip button depends on
type SkipIntroRequest struct {
	CurrentTime     float64         `json:"currentTime"`
	Status          string          `json:"status"`
	ControlsShowing bool            `json:"controlsShowing"`
	SkipData        player.SkipData `json:"skipData"`
}

// SkipTargetResponse is the seek position for the skip button
type SkipTargetResponse struct {
	Time  float64 `json:"time"`
	Found bool    `json:"found"`
}

// TransferResult reports an export or import of the preferences file
type TransferResult struct {
	Path      string `json:"path"`
	Cancelled bool   `json:"cancelled"`
}

// Dialog interface for system dialogs. An empty path means the user cancelled.
type DialogHandler interface {
	OpenPreferencesDialog() (string, error)
	SavePreferencesDialog(filename string) (string, error)
}

// EventEmitter sends an event to the frontend; wailsruntime.EventsEmit in production
type EventEmitter func(ctx context.Context, eventName string, optionalData ...interface{})
