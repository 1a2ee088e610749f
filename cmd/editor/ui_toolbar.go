package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/tilepaint/session"
)

// Toolbar holds the action buttons whose state follows the session.
type Toolbar struct {
	undo  *widget.Button
	redo  *widget.Button
	save  *widget.Button
	reset *widget.Button
	sheet *widget.Label
}

func buildToolbar(theme *widget.Theme, fontFace *text.Face, g *Game) (*widget.Container, *Toolbar) {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(toolbarColor)),
	)

	newButton := func(label string, onClick func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
		toolbar.AddChild(btn)
		return btn
	}

	tb := &Toolbar{}
	newButton("File", func() { logAction("Open spritesheet", g.sess.NewSpriteSheet()) })
	tb.reset = newButton("Reset", func() { g.sess.Reset() })
	tb.undo = newButton("Undo", func() { g.sess.Undo() })
	tb.redo = newButton("Redo", func() { g.sess.Redo() })
	tb.save = newButton("Save", func() { logAction("Save", g.sess.Save()) })
	newButton("Load", func() { logAction("Load", g.sess.Load()) })

	tb.sheet = widget.NewLabel(
		widget.LabelOpts.Text("No spritesheet", fontFace, &widget.LabelColor{Idle: buttonTextColor.Idle}),
	)
	toolbar.AddChild(tb.sheet)
	return toolbar, tb
}

// Refresh enables the buttons that would do something right now.
func (tb *Toolbar) Refresh(sess *session.Session) {
	if tb == nil {
		return
	}
	e := sess.Engine
	tb.undo.GetWidget().Disabled = e.UndoLen() == 0
	tb.redo.GetWidget().Disabled = e.RedoLen() == 0
	tb.reset.GetWidget().Disabled = e.Grid().Len() == 0

	ref, ok := e.SpriteSheet()
	tb.save.GetWidget().Disabled = !ok
	if !ok {
		tb.sheet.Label = "No spritesheet"
		return
	}
	tb.sheet.Label = fmt.Sprintf("%s  %dx%d  %d tiles", ref.Path, ref.Rows, ref.Columns, e.Grid().Len())
}
