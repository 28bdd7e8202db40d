package services

import (
	"testing"

	"moviehub/internal/models"
)

func setupTestService(t *testing.T) (*PreferencesService, *PreferencesStore) {
	t.Helper()
	store := NewPreferencesStore(newCountingStorage(), nil)
	return NewPreferencesService(store), store
}

func TestNewPreferencesService(t *testing.T) {
	service, store := setupTestService(t)

	if service == nil {
		t.Fatal("Expected PreferencesService instance, got nil")
	}

	if service.store != store {
		t.Error("Expected store to be set correctly")
	}
}

func TestGetPreferences_Defaults(t *testing.T) {
	service, _ := setupTestService(t)

	prefs, err := service.GetPreferences()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if prefs == nil {
		t.Fatal("Expected preferences, got nil")
	}

	if !prefs.EnableAutoplay {
		t.Error("Expected autoplay to default to true")
	}

	if prefs.EnableThumbnails {
		t.Error("Expected thumbnails to default to false")
	}
}

func TestUpdatePreferences(t *testing.T) {
	service, store := setupTestService(t)

	updateData := map[string]interface{}{
		"enableThumbnails": true,
		"sourceOrder":      []interface{}{"vidsrc", "showbox"},
	}

	if err := service.UpdatePreferences(updateData); err != nil {
		t.Fatalf("Expected no error updating preferences, got %v", err)
	}

	prefs, err := service.GetPreferences()
	if err != nil {
		t.Fatalf("Failed to get updated preferences: %v", err)
	}

	if !prefs.EnableThumbnails {
		t.Error("Expected thumbnails to be enabled")
	}

	if len(prefs.SourceOrder) != 2 || prefs.SourceOrder[0] != "vidsrc" || prefs.SourceOrder[1] != "showbox" {
		t.Errorf("Expected source order [vidsrc showbox], got %v", prefs.SourceOrder)
	}

	if !store.EnableAutoplay() {
		t.Error("Expected untouched fields to keep their values")
	}
}

func TestUpdatePreferences_AppliesInFieldOrder(t *testing.T) {
	service, store := setupTestService(t)

	var fired []string
	SubscribeField(store, func(p models.PreferencesState) bool { return p.EnableThumbnails }, func(bool, bool) {
		fired = append(fired, FieldEnableThumbnails)
	})
	SubscribeField(store, func(p models.PreferencesState) bool { return p.EnableSourceOrder }, func(bool, bool) {
		fired = append(fired, FieldEnableSourceOrder)
	})

	err := service.UpdatePreferences(map[string]interface{}{
		"enableSourceOrder": true,
		"enableThumbnails":  true,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(fired) != 2 || fired[0] != FieldEnableThumbnails || fired[1] != FieldEnableSourceOrder {
		t.Errorf("Expected thumbnails before source order, got %v", fired)
	}
}

func TestUpdatePreferences_InvalidInputAppliesNothing(t *testing.T) {
	cases := []map[string]interface{}{
		{"enableThumbnails": true, "enableAutoplay": "no"},
		{"enableThumbnails": true, "sourceOrder": []interface{}{"a", 3}},
		{"enableThumbnails": true, "sourceOrder": "a,b"},
		{"enableThumbnails": true, "theme": "dark"},
	}

	for _, data := range cases {
		service, store := setupTestService(t)

		if err := service.UpdatePreferences(data); err == nil {
			t.Errorf("Expected error for %v", data)
		}

		if store.EnableThumbnails() {
			t.Errorf("Expected no field applied for %v", data)
		}
	}
}

func TestUpdatePreferences_NilSourceOrderClears(t *testing.T) {
	service, store := setupTestService(t)
	store.SetSourceOrder([]string{"a"})

	if err := service.UpdatePreferences(map[string]interface{}{"sourceOrder": nil}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(store.SourceOrder()) != 0 {
		t.Errorf("Expected empty source order, got %v", store.SourceOrder())
	}
}
