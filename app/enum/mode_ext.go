package enum

// Toggle returns the opposite mode (speak↔stop). Anything that is not speak toggles to speak.
func (m Mode) Toggle() Mode {
	if m == ModeSpeak {
		return ModeStop
	}
	return ModeSpeak
}

// Valid reports whether the mode is one of the declared values.
func (m Mode) Valid() bool {
	return m == ModeSpeak || m == ModeStop
}
