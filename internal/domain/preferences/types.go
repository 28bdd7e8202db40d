package preferences

import "moviehub/internal/models"

// Storage is a durable key/value backend. Implementations overwrite on SetItem.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Listener observes whole-state changes. prev is the state before the mutation.
type Listener func(state, prev models.PreferencesState)

// Store is the reactive preferences contract consumed by the rest of the application
type Store interface {
	State() models.PreferencesState
	Subscribe(fn Listener) func()

	SetEnableThumbnails(v bool)
	SetEnableAutoplay(v bool)
	SetEnableDiscover(v bool)
	SetSourceOrder(v []string)
	SetEnableSourceOrder(v bool)
}
