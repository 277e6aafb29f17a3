package input

// Action is a navigation input that can be held down.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveRight
	MoveLeft
	MoveUp
	MoveDown
	PitchUp
	PitchDown
	YawRight
	YawLeft
	Shift
	Control
	numActions
)

// HeldKeys tracks which navigation actions are currently held. It is
// mutated by the input router only; the camera reads it through the
// magnitude queries.
type HeldKeys struct {
	held [numActions]bool
}

func (h *HeldKeys) Set(action Action, pressed bool) {
	h.held[action] = pressed
}

func (h *HeldKeys) IsHeld(action Action) bool {
	return h.held[action]
}

func (h *HeldKeys) IsShiftPressed() bool {
	return h.held[Shift]
}

func (h *HeldKeys) IsControlPressed() bool {
	return h.held[Control]
}

// magnitude collapses an opposing pair of held actions into -1, 0 or +1.
func (h *HeldKeys) magnitude(positive, negative Action) float32 {
	var m float32
	if h.held[positive] {
		m++
	}
	if h.held[negative] {
		m--
	}
	return m
}

func (h *HeldKeys) ForwardMagnitude() float32 {
	return h.magnitude(MoveForward, MoveBackward)
}

func (h *HeldKeys) RightMagnitude() float32 {
	return h.magnitude(MoveRight, MoveLeft)
}

func (h *HeldKeys) UpMagnitude() float32 {
	return h.magnitude(MoveUp, MoveDown)
}

func (h *HeldKeys) PitchMagnitude() float32 {
	return h.magnitude(PitchDown, PitchUp)
}

func (h *HeldKeys) YawMagnitude() float32 {
	return h.magnitude(YawRight, YawLeft)
}
