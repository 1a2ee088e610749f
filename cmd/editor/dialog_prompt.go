//go:build !dialog
// +build !dialog

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/milk9111/tilepaint/session"
)

// promptDialog asks for paths on the terminal that started the editor. The
// editor window stops updating until a line is entered.
type promptDialog struct {
	in  *bufio.Reader
	out io.Writer
}

func newDialog() session.Dialog {
	return &promptDialog{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (d *promptDialog) PickSpriteSheet() (string, error) {
	return d.ask("Spritesheet image path (empty to cancel): ", "")
}

// PickSaveTarget falls back to def on an empty line.
func (d *promptDialog) PickSaveTarget(def string) (string, error) {
	return d.ask(fmt.Sprintf("Save document to (default %s): ", def), def)
}

func (d *promptDialog) PickDocument() (string, error) {
	return d.ask("Document path to load (empty to cancel): ", "")
}

func (d *promptDialog) ask(prompt, def string) (string, error) {
	fmt.Fprint(d.out, prompt)
	line, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		line = def
	}
	if line == "" {
		return "", session.ErrDialogCancelled
	}
	return line, nil
}
