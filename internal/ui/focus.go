package ui

// FocusRing tracks which of Count items has focus and rotates through them.
// It is used for both the focused scene view and the active tab. A negative
// Current means nothing is focused yet.
type FocusRing struct {
	Current  int
	Count    int
	OnChange func(from, to int)
}

// Next advances focus and returns the new index, or -1 when empty.
func (f *FocusRing) Next() int {
	return f.move(1)
}

// Prev moves focus back and returns the new index, or -1 when empty.
func (f *FocusRing) Prev() int {
	return f.move(-1)
}

func (f *FocusRing) move(step int) int {
	if f.Count <= 0 {
		return -1
	}
	from := f.Current
	switch {
	case f.Current < 0 && step > 0:
		f.Current = 0
	case f.Current < 0:
		f.Current = f.Count - 1
	default:
		f.Current = ((f.Current+step)%f.Count + f.Count) % f.Count
	}
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus focuses index i. Returns false when i is out of range.
func (f *FocusRing) SetFocus(i int) bool {
	if i < 0 || i >= f.Count {
		return false
	}
	from := f.Current
	f.Current = i
	if f.OnChange != nil && from != i {
		f.OnChange(from, i)
	}
	return true
}
