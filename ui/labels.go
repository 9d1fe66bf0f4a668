package ui

// tileLabels hands out A, B, C... for the tiles offered in a prompt.
type tileLabels struct {
	last rune
}

func (l *tileLabels) next() string {
	if l.last == 0 {
		l.last = 'A' - 1
	}
	l.last++
	return string(l.last)
}
