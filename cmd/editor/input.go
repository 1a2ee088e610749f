package main

import (
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilepaint/session"
)

const zoomStep = 1.1

func buttonState(b ebiten.MouseButton) session.Button {
	return session.Button{
		Pressed:  inpututil.IsMouseButtonJustPressed(b),
		Held:     ebiten.IsMouseButtonPressed(b),
		Released: inpututil.IsMouseButtonJustReleased(b),
	}
}

func (g *Game) readInput() session.Input {
	in := session.Input{
		Ctrl:    ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta),
		Shift:   ebiten.IsKeyPressed(ebiten.KeyShift),
		Z:       inpututil.IsKeyJustPressed(ebiten.KeyZ),
		S:       inpututil.IsKeyJustPressed(ebiten.KeyS),
		Primary: buttonState(ebiten.MouseButtonLeft),
		Middle:  buttonState(ebiten.MouseButtonMiddle),
	}

	cx, cy := ebiten.CursorPosition()
	in.Hover = g.cam.CellAt(float64(cx), float64(cy))
	// Clicks on the toolbar or tile panel must not paint the grid underneath.
	in.HoverOK = !ebuiinput.UIHovered && cx >= 0 && cy >= 0 && cx < g.width && cy < g.height
	return in
}

// updateCamera pans with a middle drag and zooms around the cursor with the
// wheel.
func (g *Game) updateCamera() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.isPanning = true
		g.lastPanX, g.lastPanY = ebiten.CursorPosition()
	}
	if g.isPanning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		g.cam.Pan(float64(cx-g.lastPanX), float64(cy-g.lastPanY))
		g.lastPanX, g.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.isPanning = false
	}

	if ebuiinput.UIHovered {
		return
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		factor := zoomStep
		if wy < 0 {
			factor = 1 / zoomStep
		}
		g.cam.ZoomAt(float64(cx), float64(cy), factor)
	}
}
