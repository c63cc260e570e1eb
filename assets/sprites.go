package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/batflap/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage *ebiten.Image

// BatAtlas draws the flap cycle as a horizontal strip of square frames of
// size pixels. Frame 0 is the resting pose.
func BatAtlas(frames, size int) *ebiten.Image {
	atlas := ebiten.NewImage(frames*size, size)
	for i := 0; i < frames; i++ {
		// Wings start level, sweep up, then down past level and back
		beat := math.Sin(2 * math.Pi * float64(i) / float64(frames))
		drawBat(atlas, float32(i*size), float32(size), float32(beat))
	}
	return atlas
}

// BatFrames slices the atlas into per-frame sub-images.
func BatFrames(atlas *ebiten.Image, frames, size int) []*ebiten.Image {
	out := make([]*ebiten.Image, frames)
	for i := range out {
		rect := image.Rect(i*size, 0, (i+1)*size, size)
		out[i] = atlas.SubImage(rect).(*ebiten.Image)
	}
	return out
}

func drawBat(dst *ebiten.Image, x, size, beat float32) {
	cx, cy := x+size/2, size/2
	body := size / 6
	span := size/2 - 2
	tipY := cy - beat*size/3

	fillPolygon(dst, config.BatWing,
		cx-body/2, cy-body/2,
		cx-span, tipY,
		cx-span/2, cy+body/2,
	)
	fillPolygon(dst, config.BatWing,
		cx+body/2, cy-body/2,
		cx+span, tipY,
		cx+span/2, cy+body/2,
	)

	vector.DrawFilledCircle(dst, cx, cy, body, config.BatBrown, true)
	// Ears
	fillPolygon(dst, config.BatBrown, cx-body, cy-body/2, cx-body/2, cy-body*1.6, cx, cy-body/2)
	fillPolygon(dst, config.BatBrown, cx, cy-body/2, cx+body/2, cy-body*1.6, cx+body, cy-body/2)
	// Eyes look right; Backward is drawn flipped
	vector.DrawFilledCircle(dst, cx+body/5, cy-body/4, body/6, config.BatEye, true)
	vector.DrawFilledCircle(dst, cx+body*3/5, cy-body/4, body/6, config.BatEye, true)
}

// fillPolygon fills the closed polygon given as x, y pairs.
func fillPolygon(dst *ebiten.Image, c color.RGBA, xy ...float32) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}

	var path vector.Path
	path.MoveTo(xy[0], xy[1])
	for i := 2; i+1 < len(xy); i += 2 {
		path.LineTo(xy[i], xy[i+1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	dst.DrawTriangles(vs, is, whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), &ebiten.DrawTrianglesOptions{})
}
