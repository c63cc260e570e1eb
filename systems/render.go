package systems

import (
	"image/color"

	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground fills the screen with the sky gradient.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	bands := cfg.Background.Bands
	if bands < 1 {
		bands = 1
	}
	bandH := height / float32(bands)

	for i := 0; i < bands; i++ {
		t := float64(i) / float64(max(bands-1, 1))
		c := lerpColor(cfg.Background.Top, cfg.Background.Bottom, t)
		// Overlap by a pixel to hide seams
		vector.FillRect(screen, 0, float32(i)*bandH, width, bandH+1, c, false)
	}
}

// DrawSprites renders every positioned sprite centred on its world position.
// The world origin is the screen centre with y pointing up.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		sprite := components.Sprite.Get(e)
		img := sprite.Current()
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		// Flip the sprite if facing left.
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}
		x, y := screenPosition(components.Transform.Get(e).Position, width, height)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}

// screenPosition maps a world position to screen pixels.
func screenPosition(p math.Vec2, width, height int) (float64, float64) {
	return float64(width)/2 + p.X, float64(height)/2 - p.Y
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
