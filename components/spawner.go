package components

import "github.com/yohamta/donburi"

// SpawnerData counts ticks between hazard spawns (singleton component)
type SpawnerData struct {
	Frames  int
	Spawned int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
