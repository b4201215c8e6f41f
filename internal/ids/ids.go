package ids

import "github.com/segmentio/ksuid"

// New returns a sortable, time-prefixed identifier.
func New() string {
	return ksuid.New().String()
}
