package testutil

// Recorder collects the values passed to a free or copy callback.
type Recorder[T any] struct {
	Seen []T
}

// Free returns a callback that records each value it is given.
func (r *Recorder[T]) Free() func(T) {
	return func(v T) { r.Seen = append(r.Seen, v) }
}

// Copy returns a callback that records each value and returns conv(v).
func (r *Recorder[T]) Copy(conv func(T) T) func(T) T {
	return func(v T) T {
		r.Seen = append(r.Seen, v)
		return conv(v)
	}
}

// Count returns how many values were recorded.
func (r *Recorder[T]) Count() int { return len(r.Seen) }

// Reset forgets every recorded value.
func (r *Recorder[T]) Reset() { r.Seen = r.Seen[:0] }
