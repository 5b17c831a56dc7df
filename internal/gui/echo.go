package gui

// echoFilter tells apart input text updates that merely echo what the
// user typed from changes made by the session itself (swap, voice input,
// history selection). Only the latter are written back into the entry.
type echoFilter struct {
	pending []string
}

// sent records a text dispatched from the entry
func (f *echoFilter) sent(text string) {
	f.pending = append(f.pending, text)
}

// external reports whether text did not originate from the entry
func (f *echoFilter) external(text string) bool {
	for i, p := range f.pending {
		if p == text {
			f.pending = f.pending[i+1:]
			return false
		}
	}
	f.pending = nil
	return true
}
