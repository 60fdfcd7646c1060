package visualizer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the slice of ebiten input state the game polls each tick.
type Input interface {
	KeyJustPressed(k ebiten.Key) bool
	MouseDown(b ebiten.MouseButton) bool
	Cursor() (x, y int)
	Wheel() (x, y float64)
}

// EbitenInput reads the live ebiten input state.
type EbitenInput struct{}

func (EbitenInput) KeyJustPressed(k ebiten.Key) bool    { return inpututil.IsKeyJustPressed(k) }
func (EbitenInput) MouseDown(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }
func (EbitenInput) Cursor() (x, y int)                  { return ebiten.CursorPosition() }
func (EbitenInput) Wheel() (x, y float64)               { return ebiten.Wheel() }
