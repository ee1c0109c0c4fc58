package tags

import "github.com/yohamta/donburi"

var (
	Fighter  = donburi.NewTag().SetName("Fighter")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for collision queries
const (
	ResolvFighter  = "fighter"
	ResolvHazard   = "hazard"
	ResolvPlatform = "platform"
)
