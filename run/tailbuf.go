package run

// tailBuffer is a fixed-capacity buffer that retains the most recently
// written runes, discarding from the front once the cap is exceeded.
// The cap is counted in runes rather than bytes because the retained-output
// limit is specified in characters.
type tailBuffer struct {
	runes    []rune
	capacity int
}

func newTailBuffer(capacity int) *tailBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &tailBuffer{capacity: capacity}
}

// WriteString appends s, trimming the oldest runes once the capacity is
// exceeded. The trim happens on every write, so the buffer never holds more
// than capacity runes no matter how the input is chunked.
func (b *tailBuffer) WriteString(s string) {
	if b.capacity == 0 {
		return
	}

	rs := []rune(s)
	if len(rs) >= b.capacity {
		// Input alone fills the buffer: keep only its tail.
		b.runes = append(b.runes[:0], rs[len(rs)-b.capacity:]...)
		return
	}

	b.runes = append(b.runes, rs...)
	if over := len(b.runes) - b.capacity; over > 0 {
		b.runes = append(b.runes[:0], b.runes[over:]...)
	}
}

// Len returns the number of runes currently retained.
func (b *tailBuffer) Len() int { return len(b.runes) }

func (b *tailBuffer) String() string { return string(b.runes) }
