package stage

import "time"

// CameraManager owns the world's cameras and tracks which one is active.
// The active camera is the view Render draws through. A manager with no
// cameras has no active view, and targets fall back to the identity view.
type CameraManager struct {
	cameras *Collection[*Camera]
	active  *Camera
}

// NewCameraManager creates an empty camera manager.
func NewCameraManager() *CameraManager {
	return &CameraManager{cameras: NewCollection[*Camera](2)}
}

// Add creates a camera with the given viewport and adds it to the manager.
// The first camera added becomes active.
func (m *CameraManager) Add(name string, viewport Rect) *Camera {
	cam := NewCamera(name, viewport)
	m.cameras.Add(cam)
	if m.active == nil {
		m.active = cam
	}
	return cam
}

// Remove removes a camera. If it was active, the first remaining camera (if
// any) becomes active.
func (m *CameraManager) Remove(cam *Camera) {
	if !m.cameras.Remove(cam) {
		return
	}
	if m.active == cam {
		m.active, _ = m.cameras.At(0)
	}
}

// Get returns the camera with the given name, or nil.
func (m *CameraManager) Get(name string) *Camera {
	for _, c := range m.cameras.Items() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SetActive makes cam the active view. Cameras not owned by the manager are
// ignored. Reports whether the active camera changed.
func (m *CameraManager) SetActive(cam *Camera) bool {
	if cam == m.active || !m.cameras.Contains(cam) {
		return false
	}
	m.active = cam
	return true
}

// Active returns the active camera, or nil when the manager is empty.
func (m *CameraManager) Active() *Camera {
	return m.active
}

// Len returns the number of cameras.
func (m *CameraManager) Len() int {
	return m.cameras.Len()
}

// Cameras returns the camera list. The returned slice MUST NOT be mutated.
func (m *CameraManager) Cameras() []*Camera {
	return m.cameras.Items()
}

// Tick advances every camera's follow and scroll state. Register the manager
// as a Tickable to drive camera motion from the world's tick pass.
func (m *CameraManager) Tick(dt time.Duration) {
	for _, cam := range m.cameras.Items() {
		cam.Tick(dt)
	}
}
