package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skybird/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// Screen draws the simulation onto an ebiten image. It satisfies
// system.Renderer and system.BoxRenderer.
type Screen struct {
	dst        *ebiten.Image
	camX, camY float64
	face       *text.GoTextFace
	warned     map[string]bool
}

func NewScreen(fontSize float64) (*Screen, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Screen{
		face:   &text.GoTextFace{Source: src, Size: fontSize},
		warned: map[string]bool{},
	}, nil
}

// Target sets the image the next frame is drawn onto.
func (s *Screen) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) Clear() {
	if s.dst != nil {
		s.dst.Clear()
	}
}

func (s *Screen) FillBackground(c color.RGBA) {
	if s.dst != nil {
		s.dst.Fill(c)
	}
}

func (s *Screen) SetCamera(x, y float64) {
	s.camX, s.camY = x, y
}

// DrawSprite draws row frame of the named sheet centred on (x, y), scaled to
// w by h and mirrored when facing left.
func (s *Screen) DrawSprite(sprite string, x, y, w, h float64, facing component.Facing, frame, tileW, tileH int) {
	if s.dst == nil {
		return
	}
	img := GetImage(sprite)
	if img == nil {
		if !s.warned[sprite] {
			log.Printf("render: no image for sprite %q", sprite)
			s.warned[sprite] = true
		}
		s.DrawBox(x-w/2, y-h/2, w, h)
		return
	}

	rows := img.Bounds().Dy() / tileH
	if rows <= 0 {
		return
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= rows {
		frame = rows - 1
	}
	src := img.SubImage(image.Rect(0, frame*tileH, tileW, (frame+1)*tileH)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(tileW), h/float64(tileH))
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(float64(facing.Normalize()), 1)
	op.GeoM.Translate(x-s.camX, y-s.camY)
	op.Filter = ebiten.FilterNearest
	s.dst.DrawImage(src, op)
}

// DrawText draws s in screen space with its baseline at y.
func (s *Screen) DrawText(str string, x, y float64) {
	if s.dst == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-s.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(s.dst, str, s.face, op)
}

func (s *Screen) MeasureText(str string) float64 {
	w, _ := text.Measure(str, s.face, 0)
	return w
}

// DrawBox outlines a world-space rectangle given by its top-left corner.
func (s *Screen) DrawBox(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	vector.StrokeRect(s.dst, float32(x-s.camX), float32(y-s.camY), float32(w), float32(h), 1, colornames.Red, false)
}
