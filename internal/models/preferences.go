package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// PreferencesKey is the namespaced storage key holding the persisted preferences record
const PreferencesKey = "__MW::preferences"

// ErrEmptyRecord is returned when the persisted record holds no data
var ErrEmptyRecord = errors.New("empty preferences record")

// PreferencesState represents the user display and playback preferences
type PreferencesState struct {
	EnableThumbnails  bool     `json:"enableThumbnails"`
	EnableAutoplay    bool     `json:"enableAutoplay"`
	EnableDiscover    bool     `json:"enableDiscover"`
	SourceOrder       []string `json:"sourceOrder"`
	EnableSourceOrder bool     `json:"enableSourceOrder"`
}

// DefaultPreferences returns default preference values
func DefaultPreferences() PreferencesState {
	return PreferencesState{
		EnableThumbnails:  false,
		EnableAutoplay:    true,
		EnableDiscover:    true,
		SourceOrder:       []string{},
		EnableSourceOrder: false,
	}
}

// Clone returns a copy that shares no memory with p.
func (p PreferencesState) Clone() PreferencesState {
	out := p
	if p.SourceOrder == nil {
		out.SourceOrder = []string{}
	} else {
		out.SourceOrder = slices.Clone(p.SourceOrder)
	}
	return out
}

// Equal reports whether both states hold the same values field for field.
// A nil and an empty source order compare equal.
func (p PreferencesState) Equal(o PreferencesState) bool {
	return p.EnableThumbnails == o.EnableThumbnails &&
		p.EnableAutoplay == o.EnableAutoplay &&
		p.EnableDiscover == o.EnableDiscover &&
		p.EnableSourceOrder == o.EnableSourceOrder &&
		slices.Equal(p.SourceOrder, o.SourceOrder)
}

// EncodePreferences serializes the full state for storage
func EncodePreferences(p PreferencesState) (string, error) {
	data, err := json.Marshal(p.Clone())
	if err != nil {
		return "", fmt.Errorf("encode preferences: %w", err)
	}
	return string(data), nil
}

// DecodePreferences parses a stored record. Fields missing from the record keep
// their default values.
func DecodePreferences(raw string) (PreferencesState, error) {
	prefs, err := MergePreferences(DefaultPreferences(), raw)
	if err != nil {
		return DefaultPreferences(), err
	}
	return prefs, nil
}

// MergePreferences parses raw over base. Fields absent from raw keep the value
// they have in base; base itself is not modified.
func MergePreferences(base PreferencesState, raw string) (PreferencesState, error) {
	if strings.TrimSpace(raw) == "" {
		return base.Clone(), ErrEmptyRecord
	}

	prefs := base.Clone()
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return base.Clone(), fmt.Errorf("decode preferences: %w", err)
	}

	if prefs.SourceOrder == nil {
		prefs.SourceOrder = []string{}
	}
	return prefs, nil
}
