package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is an atlas view: Frames are sub-images of Atlas and Index picks
// the one to draw.
type SpriteData struct {
	Atlas  *ebiten.Image
	Frames []*ebiten.Image
	Index  int
	FlipX  bool
}

// Current returns the selected frame, or nil when Index is out of range.
func (s *SpriteData) Current() *ebiten.Image {
	if s.Index < 0 || s.Index >= len(s.Frames) {
		return nil
	}
	return s.Frames[s.Index]
}

var Sprite = donburi.NewComponentType[SpriteData]()
