package transport

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

type dialogsHandler struct {
	ctx context.Context
}

func NewDialogsHandler(ctx context.Context) DialogHandler {
	return &dialogsHandler{
		ctx: ctx,
	}
}

var preferencesFileFilter = []wailsruntime.FileFilter{
	{
		DisplayName: "Preferences (*.json)",
		Pattern:     "*.json",
	},
}

func (h *dialogsHandler) OpenPreferencesDialog() (string, error) {
	selection, err := wailsruntime.OpenFileDialog(h.ctx, wailsruntime.OpenDialogOptions{
		Title:   "Import preferences",
		Filters: preferencesFileFilter,
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}

func (h *dialogsHandler) SavePreferencesDialog(filename string) (string, error) {
	selection, err := wailsruntime.SaveFileDialog(h.ctx, wailsruntime.SaveDialogOptions{
		Title:           "Export preferences",
		DefaultFilename: filename,
		Filters:         preferencesFileFilter,
	})

	if err != nil {
		return "", err
	}

	return selection, nil
}
