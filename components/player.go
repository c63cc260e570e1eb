package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Spawn math.Vec2 // position restored on reset
}

var Player = donburi.NewComponentType[PlayerData]()
