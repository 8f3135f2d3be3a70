//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(any, int, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowChunks always reports false in headless builds.
func (o *Overlay) ShowChunks() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}

// DrawBrush is a no-op placeholder.
func (o *Overlay) DrawBrush(any, int, int, int) {}
