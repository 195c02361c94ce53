package host

import (
	"time"

	"github.com/user/menuvideo/pkg/ports"
)

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

var _ ports.Clock = SystemClock{}
