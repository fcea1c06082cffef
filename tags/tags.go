package tags

import "github.com/yohamta/donburi"

var (
	Panel  = donburi.NewTag().SetName("Panel")
	Status = donburi.NewTag().SetName("Status")
	Menu   = donburi.NewTag().SetName("Menu")
)
