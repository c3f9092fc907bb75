package digit

// Window holds the most recent MaxWordLen bytes of input in arrival order.
// The zero value is an empty window.
type Window struct {
	buf [MaxWordLen]byte
	n   int
}

// Push appends c, discarding the oldest byte once the window is full.
func (w *Window) Push(c byte) {
	if w.n < MaxWordLen {
		w.buf[w.n] = c
		w.n++
		return
	}
	copy(w.buf[:], w.buf[1:])
	w.buf[MaxWordLen-1] = c
}

// Len returns the number of bytes currently held.
func (w *Window) Len() int {
	return w.n
}

// Bytes returns the held bytes, oldest first. The slice aliases the window
// and is only valid until the next Push.
func (w *Window) Bytes() []byte {
	return w.buf[:w.n]
}

// HasSuffix reports whether the trailing len(word) bytes equal word exactly.
func (w *Window) HasSuffix(word string) bool {
	k := len(word)
	if k == 0 || k > w.n {
		return false
	}
	tail := w.buf[w.n-k : w.n]
	for i := 0; i < k; i++ {
		if tail[i] != word[i] {
			return false
		}
	}
	return true
}

// Reset empties the window.
func (w *Window) Reset() {
	w.n = 0
}
