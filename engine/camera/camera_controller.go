package camera

// CameraController translates raw window input into Camera mutations.
// Key state is latched by KeyDown/KeyUp and applied once per frame in Update so movement speed is
// frame-rate independent. Pointer and wheel events are applied to the camera as they arrive.
//
// The zero-position pointer sample problem is handled with a first-sample rule: the first MouseMove
// after construction (or after the look button is pressed) only records the position.
type CameraController interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera this controller mutates
	Camera() Camera

	// KeyDown marks a key as held.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common.Key*)
	KeyDown(keyCode uint32)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common.Key*)
	KeyUp(keyCode uint32)

	// MouseMove feeds an absolute pointer position in window pixels.
	// The offset from the previous sample is forwarded to Camera.ProcessMouseMovement with y inverted.
	//
	// Parameters:
	//   - x, y: pointer position in pixels, origin at the top-left
	MouseMove(x, y float64)

	// MouseButton reports a pointer button transition. Only the configured look button matters.
	//
	// Parameters:
	//   - button: the button code (see common.MouseButton*)
	//   - pressed: true on press, false on release
	MouseButton(button int, pressed bool)

	// Scroll forwards a wheel delta to Camera.ProcessMouseScroll, scaled by the scroll scale.
	//
	// Parameters:
	//   - delta: wheel delta, positive when scrolling up/away
	Scroll(delta float32)

	// Update applies every held movement key for this frame.
	//
	// Parameters:
	//   - deltaTime: seconds elapsed since the previous frame
	Update(deltaTime float32)

	// IsLooking reports whether pointer movement currently turns the camera.
	//
	// Returns:
	//   - bool: true when look is always on or the look button is held
	IsLooking() bool

	// Reset releases every held key and re-arms the first-sample rule.
	// Call it when the window loses focus.
	Reset()
}
