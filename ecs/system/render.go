package system

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybird/common"
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// Renderer is the drawing surface the simulation paints onto. Sprite and
// box coordinates are world space; the renderer subtracts the camera offset
// set by SetCamera. Text coordinates are screen space.
type Renderer interface {
	Clear()
	FillBackground(c color.RGBA)
	SetCamera(x, y float64)
	DrawSprite(sprite string, x, y, w, h float64, facing component.Facing, frame, tileW, tileH int)
	DrawText(s string, x, y float64)
	MeasureText(s string) float64
}

// BoxRenderer is implemented by renderers that can outline collision boxes.
type BoxRenderer interface {
	DrawBox(x, y, w, h float64)
}

var (
	skyBottom = [3]float64{50, 150, 200}
	skyTop    = [3]float64{5, 15, 100}
)

// OverlayLines is the message shown once the finale has finished.
var OverlayLines = []string{"Happy Birthday Dad!", "I love you so much."}

// RenderSystem draws the world back to front, the player on top, then the
// finale overlay.
type RenderSystem struct {
	tuning *Tuning
	Debug  bool
}

func NewRenderSystem(tuning *Tuning) *RenderSystem {
	return &RenderSystem{tuning: tuning}
}

// BackgroundColor is the sky colour for a camera height: it darkens from
// the horizon at camY = 0 to night at camY = minY.
func BackgroundColor(camY, minY float64) color.RGBA {
	percent := 0.0
	if minY != 0 {
		percent = camY / minY
	}
	var ch [3]uint8
	for i := range ch {
		v := math.Round(common.Lerp(skyBottom[i], skyTop[i], percent))
		ch[i] = uint8(cp.Clamp(v, 0, 255))
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}
}

func (r *RenderSystem) Draw(w *ecs.World, dst Renderer) {
	if r == nil || r.tuning == nil || w == nil || dst == nil {
		return
	}
	t := r.tuning

	camX, camY := 0.0, 0.0
	if camEntity, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
		if p, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
			camX, camY = p.X, p.Y
		}
	}

	dst.Clear()
	dst.FillBackground(BackgroundColor(camY, t.CameraMinY))
	dst.SetCamera(camX, camY)

	var player ecs.Entity
	ecs.ForEach(w, component.EntityKindComponent.Kind(), func(e ecs.Entity, kind *component.EntityKind) {
		if *kind == component.KindPlayer {
			player = e
			return
		}
		r.drawEntity(w, e, dst)
	})
	if player.Valid() {
		r.drawEntity(w, player, dst)
	}

	dst.SetCamera(0, 0)

	if FinaleShowing(w) {
		for i, line := range OverlayLines {
			x := (t.ViewW - dst.MeasureText(line)) / 2
			y := t.ViewH/2 - 200 + float64(i)*100
			dst.DrawText(line, x, y)
		}
	}
}

func (r *RenderSystem) drawEntity(w *ecs.World, e ecs.Entity, dst Renderer) {
	pos, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	size, ok := ecs.Get(w, e, component.SizeComponent.Kind())
	if !ok {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || anim.Sprite == "" {
		return
	}
	facing := component.FacingRight
	if f, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
		facing = f.Normalize()
	}

	tw, th := anim.Tile()
	dst.DrawSprite(anim.Sprite, pos.X, pos.Y, size.W, size.H, facing, anim.FrameIndex(), tw, th)

	if !r.Debug {
		return
	}
	boxes, ok := dst.(BoxRenderer)
	if !ok {
		return
	}
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		for _, b := range col.Boxes {
			bb := worldBox(pos.X, pos.Y, b)
			boxes.DrawBox(bb.L, bb.B, b.W, b.H)
		}
	}
}
