package transport

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"moviehub/internal/common"
	preferencesDomain "moviehub/internal/domain/preferences"
	"moviehub/internal/maintenance"
	"moviehub/internal/models"
	"moviehub/internal/player"
	"moviehub/internal/services"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

const exportFilename = "moviehub-preferences.json"

type WailsApp struct {
	ctx          context.Context
	store        preferencesDomain.Store
	prefsService *services.PreferencesService
	gate         *maintenance.Gate
	dialogs      DialogHandler
	emit         EventEmitter
	logger       *slog.Logger
	unsubscribe  func()
}

// Option customises a WailsApp
type Option func(*WailsApp)

// WithEmitter replaces the Wails event emitter
func WithEmitter(emit EventEmitter) Option {
	return func(a *WailsApp) { a.emit = emit }
}

// WithDialogs replaces the native dialog handler
func WithDialogs(dialogs DialogHandler) Option {
	return func(a *WailsApp) { a.dialogs = dialogs }
}

func NewWailsApp(
	ctx context.Context,
	store preferencesDomain.Store,
	prefsService *services.PreferencesService,
	gate *maintenance.Gate,
	logger *slog.Logger,
	opts ...Option,
) *WailsApp {
	if logger == nil {
		logger = slog.Default()
	}

	a := &WailsApp{
		ctx:          ctx,
		store:        store,
		prefsService: prefsService,
		gate:         gate,
		emit:         wailsruntime.EventsEmit,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.dialogs == nil {
		a.dialogs = NewDialogsHandler(ctx)
	}
	return a
}

// Start forwards every preferences change to the frontend
func (a *WailsApp) Start() {
	if a.unsubscribe != nil {
		return
	}
	a.unsubscribe = a.store.Subscribe(func(state, _ models.PreferencesState) {
		a.emit(a.ctx, common.EventPreferencesChanged, state)
	})
}

// Stop detaches from the store
func (a *WailsApp) Stop() {
	if a.unsubscribe == nil {
		return
	}
	a.unsubscribe()
	a.unsubscribe = nil
}

func (a *WailsApp) GetPreferences() (*models.PreferencesState, error) {
	return a.prefsService.GetPreferences()
}

func (a *WailsApp) UpdatePreferences(data map[string]interface{}) error {
	if err := a.prefsService.UpdatePreferences(data); err != nil {
		a.logger.Warn("Rejected preferences update", "error", err)
		return err
	}
	return nil
}

func (a *WailsApp) SetEnableThumbnails(v bool) {
	a.store.SetEnableThumbnails(v)
}

func (a *WailsApp) SetEnableAutoplay(v bool) {
	a.store.SetEnableAutoplay(v)
}

func (a *WailsApp) SetEnableDiscover(v bool) {
	a.store.SetEnableDiscover(v)
}

func (a *WailsApp) SetSourceOrder(v []string) {
	a.store.SetSourceOrder(v)
}

func (a *WailsApp) SetEnableSourceOrder(v bool) {
	a.store.SetEnableSourceOrder(v)
}

func (a *WailsApp) SkipIntroState(request SkipIntroRequest) player.ButtonState {
	return player.ResolveButtonState(request.CurrentTime, request.Status, request.ControlsShowing, request.SkipData)
}

func (a *WailsApp) SkipIntroTarget(data player.SkipData) SkipTargetResponse {
	t, ok := player.SkipTarget(data)
	return SkipTargetResponse{Time: t, Found: ok}
}

func (a *WailsApp) MaintenanceStatus() maintenance.Status {
	return a.gate.Status()
}

func (a *WailsApp) DismissMaintenance() maintenance.Status {
	a.gate.Dismiss()
	status := a.gate.Status()
	a.emit(a.ctx, common.EventMaintenanceChanged, status)
	return status
}

// ExportPreferences writes the current preferences to a user-chosen file
func (a *WailsApp) ExportPreferences() (TransferResult, error) {
	path, err := a.dialogs.SavePreferencesDialog(exportFilename)
	if err != nil {
		return TransferResult{}, fmt.Errorf("save dialog: %w", err)
	}
	if path == "" {
		return TransferResult{Cancelled: true}, nil
	}

	raw, err := models.EncodePreferences(a.store.State())
	if err != nil {
		return TransferResult{}, err
	}
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		return TransferResult{}, fmt.Errorf("write preferences file: %w", err)
	}

	a.logger.Info("Preferences exported", "path", path)
	return TransferResult{Path: path}, nil
}

// ImportPreferences reads a user-chosen file and applies it field by field
// through the store setters. Fields the file leaves out keep their current
// values.
func (a *WailsApp) ImportPreferences() (TransferResult, error) {
	path, err := a.dialogs.OpenPreferencesDialog()
	if err != nil {
		return TransferResult{}, fmt.Errorf("open dialog: %w", err)
	}
	if path == "" {
		return TransferResult{Cancelled: true}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return TransferResult{}, fmt.Errorf("read preferences file: %w", err)
	}
	current := a.store.State()
	prefs, err := models.MergePreferences(current, string(data))
	if err != nil {
		return TransferResult{}, fmt.Errorf("import %s: %w", path, err)
	}

	if prefs.EnableThumbnails != current.EnableThumbnails {
		a.store.SetEnableThumbnails(prefs.EnableThumbnails)
	}
	if prefs.EnableAutoplay != current.EnableAutoplay {
		a.store.SetEnableAutoplay(prefs.EnableAutoplay)
	}
	if prefs.EnableDiscover != current.EnableDiscover {
		a.store.SetEnableDiscover(prefs.EnableDiscover)
	}
	if !slices.Equal(prefs.SourceOrder, current.SourceOrder) {
		a.store.SetSourceOrder(prefs.SourceOrder)
	}
	if prefs.EnableSourceOrder != current.EnableSourceOrder {
		a.store.SetEnableSourceOrder(prefs.EnableSourceOrder)
	}

	a.logger.Info("Preferences imported", "path", path)
	return TransferResult{Path: path}, nil
}
