package system

// StemToggler flips an audio stem on or off
type StemToggler interface {
	Toggle(i int) bool
}

// ToggleStems flips every stem whose key was pressed this frame
func ToggleStems(s StemToggler, in InputState) {
	if s == nil {
		return
	}
	for i, a := range StemActions {
		if in.WasJustPressed(a) {
			s.Toggle(i)
		}
	}
}
