package system

// ButtonType enumerates the logical game buttons
type ButtonType int

const (
	ButtonJump ButtonType = iota
	ButtonSwitch
	ButtonAbility
	ButtonSwitchAndAbility
	ButtonLeft
	ButtonRight
	ButtonUp
	ButtonDown

	ButtonPause
	ButtonConfirm

	buttonCount
)

// Button is the per-tick state of one logical button. A held button counts
// the ticks since the press; the first simulated tick after a press reports
// PressedFirstFrame.
type Button struct {
	pressed      bool
	pressedTicks int
}

// Pressed reports whether the button is down
func (b Button) Pressed() bool {
	return b.pressed
}

// PressedFirstFrame reports whether this is the first tick of the press
func (b Button) PressedFirstFrame() bool {
	return b.pressed && b.pressedTicks == 1
}

// Input is the per-tick input snapshot consumed by the simulation. The shell
// feeds presses/releases from the real event source (keyboard or replay) and
// calls Tick once per simulation tick, before the simulation reads it.
type Input struct {
	buttons [buttonCount]Button
}

// NewInput creates an input state with all buttons released
func NewInput() *Input {
	return &Input{}
}

// Tick advances held-duration counters. Must be called exactly once per
// simulation tick.
func (in *Input) Tick() {
	for i := range in.buttons {
		if in.buttons[i].pressed {
			in.buttons[i].pressedTicks++
		}
	}
}

// SetPressed marks a button down. Repeated presses while held do not restart
// the held-duration counter.
func (in *Input) SetPressed(t ButtonType) {
	if !in.buttons[t].pressed {
		in.buttons[t] = Button{pressed: true, pressedTicks: 0}
	}
}

// SetReleased marks a button up
func (in *Input) SetReleased(t ButtonType) {
	in.buttons[t] = Button{}
}

// Button returns the state of one button
func (in *Input) Button(t ButtonType) Button {
	return in.buttons[t]
}

// HorizontalAxis returns the signed horizontal input (-1, 0 or 1)
func (in *Input) HorizontalAxis() float64 {
	axis := 0.0
	if in.buttons[ButtonRight].pressed {
		axis++
	}
	if in.buttons[ButtonLeft].pressed {
		axis--
	}
	return axis
}

// VerticalAxis returns the signed vertical input (down positive)
func (in *Input) VerticalAxis() float64 {
	axis := 0.0
	if in.buttons[ButtonDown].pressed {
		axis++
	}
	if in.buttons[ButtonUp].pressed {
		axis--
	}
	return axis
}

// AbilityPressed reports whether either ability chord is held
func (in *Input) AbilityPressed() bool {
	return in.buttons[ButtonAbility].pressed || in.buttons[ButtonSwitchAndAbility].pressed
}

// AbilityPressedFirstFrame reports a fresh ability press on this tick
func (in *Input) AbilityPressedFirstFrame() bool {
	return in.Button(ButtonAbility).PressedFirstFrame() ||
		in.Button(ButtonSwitchAndAbility).PressedFirstFrame()
}

// SwitchPressedFirstFrame reports a fresh world-switch press on this tick
func (in *Input) SwitchPressedFirstFrame() bool {
	return in.Button(ButtonSwitch).PressedFirstFrame() ||
		in.Button(ButtonSwitchAndAbility).PressedFirstFrame()
}
