package input

import "testing"

func TestMagnitudes(t *testing.T) {
	var keys HeldKeys

	if m := keys.ForwardMagnitude(); m != 0 {
		t.Errorf("expected zero forward magnitude at rest, got %f", m)
	}

	keys.Set(MoveForward, true)
	if m := keys.ForwardMagnitude(); m != 1 {
		t.Errorf("expected +1 forward magnitude, got %f", m)
	}

	keys.Set(MoveBackward, true)
	if m := keys.ForwardMagnitude(); m != 0 {
		t.Errorf("opposing keys should cancel, got %f", m)
	}

	keys.Set(MoveForward, false)
	if m := keys.ForwardMagnitude(); m != -1 {
		t.Errorf("expected -1 forward magnitude, got %f", m)
	}
}

func TestPitchYawSigns(t *testing.T) {
	var keys HeldKeys

	// PitchDown is the positive direction, matching the cursor convention
	// where moving the mouse down tilts the camera down.
	keys.Set(PitchDown, true)
	if m := keys.PitchMagnitude(); m != 1 {
		t.Errorf("expected +1 pitch magnitude for pitch-down, got %f", m)
	}

	keys.Set(YawLeft, true)
	if m := keys.YawMagnitude(); m != -1 {
		t.Errorf("expected -1 yaw magnitude for yaw-left, got %f", m)
	}
}

func TestPressReleaseSymmetry(t *testing.T) {
	var keys HeldKeys
	keys.Set(MoveUp, true)
	keys.Set(MoveUp, false)
	if keys.IsHeld(MoveUp) {
		t.Error("release did not clear the held flag")
	}
	if m := keys.UpMagnitude(); m != 0 {
		t.Errorf("expected zero up magnitude after release, got %f", m)
	}
}

func TestModifiers(t *testing.T) {
	var keys HeldKeys
	if keys.IsShiftPressed() || keys.IsControlPressed() {
		t.Error("modifiers should start released")
	}
	keys.Set(Shift, true)
	keys.Set(Control, true)
	if !keys.IsShiftPressed() || !keys.IsControlPressed() {
		t.Error("modifiers not reported as held")
	}
}
