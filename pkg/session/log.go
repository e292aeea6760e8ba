package session

// Log is an append-only sequence of text lines. It only grows.
type Log struct {
	lines     []string
	listeners []func([]string)
}

// Append adds lines to the end of the log and notifies listeners.
func (l *Log) Append(lines ...string) {
	if len(lines) == 0 {
		return
	}
	l.lines = append(l.lines, lines...)
	for _, fn := range l.listeners {
		fn(lines)
	}
}

// Lines returns a copy of every line so far.
func (l *Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of lines.
func (l *Log) Len() int {
	return len(l.lines)
}

// OnAppend registers fn to receive every batch of appended lines.
func (l *Log) OnAppend(fn func(lines []string)) {
	l.listeners = append(l.listeners, fn)
}
