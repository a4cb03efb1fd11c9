package names

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
)

// Unique returns prefix followed by a random suffix, so that suites sharing
// a broker do not collide.
func Unique(prefix string) string {
	return fmt.Sprintf("%v-%v", prefix, uuid.NewV4().String()[:8])
}
