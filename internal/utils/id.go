package utils

import "github.com/google/uuid"

// IDHookFunc defines the signature for the NewID test hook. It returns an
// id and a boolean indicating whether to override the default generation.
type IDHookFunc func() (id string, override bool)

// NewIDHook is a package-level variable that tests can set to override
// NewID behavior, e.g. to make generated ids deterministic.
var NewIDHook IDHookFunc

// NewID returns a globally-unique opaque id token (a UUID v4 string).
func NewID() string {
	if NewIDHook != nil {
		if id, override := NewIDHook(); override {
			return id
		}
	}
	return uuid.NewString()
}
