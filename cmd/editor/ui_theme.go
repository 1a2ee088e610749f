package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	panelColor     = color.RGBA{40, 40, 40, 255}
	toolbarColor   = color.RGBA{220, 220, 240, 255}
	selectedColor  = color.RGBA{180, 200, 255, 255}
	labelTextColor = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

	buttonTextColor = &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:     solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:    solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed:  solidNineSlice(color.RGBA{160, 160, 160, 255}),
				Disabled: solidNineSlice(color.RGBA{110, 110, 110, 255}),
			},
			TextFace:  fontFace,
			TextColor: buttonTextColor,
		},
	}
}
