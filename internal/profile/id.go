package profile

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewID returns a timestamp-derived opaque id for profiles and library
// entries. The random suffix keeps ids distinct when two are created
// within the same millisecond.
func NewID() string {
	return fmt.Sprintf("%d-%04x", time.Now().UnixMilli(), rand.IntN(0x10000))
}
