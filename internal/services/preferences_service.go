package services

import (
	"fmt"
	"slices"

	"moviehub/internal/domain/preferences"
	"moviehub/internal/models"
)

// Field names accepted by UpdatePreferences, matching the persisted JSON keys
const (
	FieldEnableThumbnails  = "enableThumbnails"
	FieldEnableAutoplay    = "enableAutoplay"
	FieldEnableDiscover    = "enableDiscover"
	FieldSourceOrder       = "sourceOrder"
	FieldEnableSourceOrder = "enableSourceOrder"
)

// updateOrder fixes the order in which a multi-field update is applied
var updateOrder = []string{
	FieldEnableThumbnails,
	FieldEnableAutoplay,
	FieldEnableDiscover,
	FieldSourceOrder,
	FieldEnableSourceOrder,
}

// PreferencesService handles user preferences requests coming from the frontend
type PreferencesService struct {
	store preferences.Store
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(store preferences.Store) *PreferencesService {
	return &PreferencesService{store: store}
}

// GetPreferences gets the current user preferences
func (s *PreferencesService) GetPreferences() (*models.PreferencesState, error) {
	prefs := s.store.State()
	return &prefs, nil
}

// UpdatePreferences applies each recognised field through the matching setter.
// Values are type-checked here; the store itself never validates. Nothing is
// applied when any entry is invalid.
func (s *PreferencesService) UpdatePreferences(data map[string]interface{}) error {
	for field := range data {
		if !slices.Contains(updateOrder, field) {
			return fmt.Errorf("unknown preference field %q", field)
		}
	}

	var updates []func()
	for _, field := range updateOrder {
		val, ok := data[field]
		if !ok {
			continue
		}

		switch field {
		case FieldEnableThumbnails, FieldEnableAutoplay, FieldEnableDiscover, FieldEnableSourceOrder:
			b, ok := val.(bool)
			if !ok {
				return fmt.Errorf("field %s: expected boolean, got %T", field, val)
			}
			updates = append(updates, s.boolSetter(field, b))

		case FieldSourceOrder:
			order, err := toStringSlice(val)
			if err != nil {
				return fmt.Errorf("field %s: %w", field, err)
			}
			updates = append(updates, func() { s.store.SetSourceOrder(order) })
		}
	}

	for _, apply := range updates {
		apply()
	}
	return nil
}

func (s *PreferencesService) boolSetter(field string, v bool) func() {
	switch field {
	case FieldEnableThumbnails:
		return func() { s.store.SetEnableThumbnails(v) }
	case FieldEnableAutoplay:
		return func() { s.store.SetEnableAutoplay(v) }
	case FieldEnableDiscover:
		return func() { s.store.SetEnableDiscover(v) }
	default:
		return func() { s.store.SetEnableSourceOrder(v) }
	}
}

// toStringSlice accepts []string or the []interface{} produced by JSON decoding
func toStringSlice(val interface{}) ([]string, error) {
	switch v := val.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", val)
	}
}
