package structs

import (
	"time"
)

const (
	PlatformOperational = "operational"
	PlatformDegraded    = "degraded"
	PlatformDown        = "down"
)

// Platform is the one-line rollup the dashboard banner renders.
// Operational is the healthy-over-installed app fraction.
type Platform struct {
	Status      string    `json:"status"`
	Operational Fraction  `json:"operational"`
	Ts          time.Time `json:"ts"`
}

type Fraction struct {
	X int `json:"x"`
	Y int `json:"y"`
}
