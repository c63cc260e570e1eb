package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData holds the elapsed time of the current frame.
type ClockData struct {
	Delta time.Duration
	Last  time.Time
}

// DeltaSeconds returns Delta as float seconds.
func (c *ClockData) DeltaSeconds() float64 {
	return c.Delta.Seconds()
}

var Clock = donburi.NewComponentType[ClockData]()
