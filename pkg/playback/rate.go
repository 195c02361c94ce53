package playback

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"
)

// FrameRate is a positive rational number of frames per second.
type FrameRate struct {
	Num int64
	Den int64
}

// FPS returns an integral frame rate.
func FPS(n int) FrameRate {
	return FrameRate{Num: int64(n), Den: 1}
}

// ParseFrameRate parses "30" or "30000/1001".
func ParseFrameRate(s string) (FrameRate, error) {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	r := FrameRate{Den: 1}
	var err error
	if r.Num, err = strconv.ParseInt(num, 10, 64); err != nil {
		return FrameRate{}, fmt.Errorf("parse frame rate %q: %w", s, err)
	}
	if found {
		if r.Den, err = strconv.ParseInt(den, 10, 64); err != nil {
			return FrameRate{}, fmt.Errorf("parse frame rate %q: %w", s, err)
		}
	}
	if !r.Valid() {
		return FrameRate{}, fmt.Errorf("frame rate %q must be positive", s)
	}
	return r, nil
}

// maxDen keeps Den * 1e9 within int64.
const maxDen = math.MaxInt64 / int64(time.Second)

// Valid reports whether both terms are positive and the denominator is representable.
func (r FrameRate) Valid() bool {
	return r.Num > 0 && r.Den > 0 && r.Den <= maxDen
}

// Float returns the rate as frames per second.
func (r FrameRate) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r FrameRate) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// FrameIndex maps elapsed playback time to a 1-based looping frame index:
//
//	floor(elapsed * rate) mod count + 1
//
// The product is taken in 128-bit integer arithmetic over nanoseconds, so the
// result is exact for any session length and any rate up to the int64 range.
// Negative elapsed time is clamped to zero. Returns 0 when count is not
// positive or the rate is invalid.
func FrameIndex(elapsed time.Duration, rate FrameRate, count int) int {
	if count <= 0 || !rate.Valid() {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}

	c := uint64(count)
	hi, lo := bits.Mul64(uint64(elapsed), uint64(rate.Num))
	den := uint64(rate.Den) * uint64(time.Second)

	// frames = (hi:lo) / den, split so Div64 never overflows.
	qHi := hi / den
	qLo, _ := bits.Div64(hi%den, lo, den)

	// frames mod count = (qHi * 2^64 + qLo) mod count
	pow := (math.MaxUint64%c + 1) % c
	pHi, pLo := bits.Mul64(qHi%c, pow)
	_, r := bits.Div64(pHi, pLo, c)
	r = (r + qLo%c) % c

	return int(r) + 1
}
