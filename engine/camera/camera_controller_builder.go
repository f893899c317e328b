package camera

// NoLookButton disables drag-to-look: pointer movement always turns the camera.
const NoLookButton = -1

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithKeyBinding binds a key to a movement direction. A key can be bound to a single direction;
// rebinding replaces the previous direction. Several keys may share a direction.
//
// Parameters:
//   - keyCode: the virtual key code
//   - direction: the movement applied while the key is held
//
// Returns:
//   - CameraControllerOption: functional option to add the binding
func WithKeyBinding(keyCode uint32, direction Movement) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings[keyCode] = direction
	}
}

// WithoutDefaultBindings clears the default W/S/A/D bindings. Apply it before any WithKeyBinding.
//
// Returns:
//   - CameraControllerOption: functional option to clear the bindings
func WithoutDefaultBindings() CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		clear(cc.bindings)
	}
}

// WithLookButton enables drag-to-look: the camera only turns while button is held.
// Pass NoLookButton to turn on every pointer movement (the default).
//
// Parameters:
//   - button: the pointer button code (see common.MouseButton*)
//
// Returns:
//   - CameraControllerOption: functional option to set the look button
func WithLookButton(button int) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.lookButton = button
	}
}

// WithScrollScale sets the multiplier applied to wheel deltas before they reach the camera.
//
// Parameters:
//   - scale: wheel delta multiplier
//
// Returns:
//   - CameraControllerOption: functional option to set the scroll scale
func WithScrollScale(scale float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.scrollScale = scale
	}
}

// WithInvertY flips the vertical look direction so moving the pointer up lowers the pitch.
//
// Parameters:
//   - invert: true to invert vertical look
//
// Returns:
//   - CameraControllerOption: functional option to set y inversion
func WithInvertY(invert bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.invertY = invert
	}
}

// WithConstrainPitch controls whether pointer look clamps pitch to [-PitchLimit, PitchLimit].
// Enabled by default.
//
// Parameters:
//   - constrain: false to allow the view to flip over the poles
//
// Returns:
//   - CameraControllerOption: functional option to set pitch constraint
func WithConstrainPitch(constrain bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.constrainPitch = constrain
	}
}
