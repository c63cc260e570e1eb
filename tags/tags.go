package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	// WrappingMovement marks entities that teleport across the horizontal
	// screen edges.
	WrappingMovement = donburi.NewTag().SetName("WrappingMovement")
)
