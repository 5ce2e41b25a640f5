package types

import (
	"strings"

	"github.com/google/uuid"
)

// ConstructID identifies the resource an action mutates (a grid layer, a
// control). IDs compare by value. The zero ID means "no construct".
type ConstructID string

// NoConstruct is the zero ConstructID.
const NoConstruct ConstructID = ""

// NewConstructID mints a fresh, unique ID. The kind prefix only aids logging.
func NewConstructID(kind string) ConstructID {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = "construct"
	}
	return ConstructID(kind + ":" + uuid.NewString())
}

// IsZero reports whether the ID is NoConstruct.
func (id ConstructID) IsZero() bool {
	return id == NoConstruct
}

// Kind returns the prefix given to NewConstructID.
func (id ConstructID) Kind() string {
	kind, _, _ := strings.Cut(string(id), ":")
	return kind
}
