package session

import "github.com/milk9111/tilepaint/tilemap"

// Button is the state of one pointer button during a tick.
type Button struct {
	Pressed  bool
	Held     bool
	Released bool
}

// Input is one tick of user input as seen by the editor.
type Input struct {
	// Ctrl and Shift are held modifiers; Z and S were pressed this tick.
	Ctrl  bool
	Shift bool
	Z     bool
	S     bool

	Primary Button
	Middle  Button

	Hover   tilemap.Pos
	HoverOK bool
}

// Step applies one tick of input. Only the save shortcut can fail.
func (s *Session) Step(in Input) error {
	if in.Ctrl && in.Z {
		if in.Shift {
			s.Engine.Redo()
		} else {
			s.Engine.Undo()
		}
	}

	var err error
	if in.Ctrl && in.S {
		err = s.Save()
	}

	s.stepStroke(in)
	return err
}

func (s *Session) stepStroke(in Input) {
	e := s.Engine
	if s.Selected == nil {
		e.EndStroke()
		return
	}

	if in.Primary.Pressed && in.HoverOK {
		e.BeginStroke()
	}
	if e.StrokeActive() && in.HoverOK && (in.Primary.Pressed || in.Primary.Held) {
		e.Touch(in.Hover, s.Selected.Region)
	}
	if in.Primary.Released {
		e.EndStroke()
	}
}
