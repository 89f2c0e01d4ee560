package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Key     = donburi.NewTag().SetName("Key")
	Door    = donburi.NewTag().SetName("Door")
	KeySlot = donburi.NewTag().SetName("KeySlot")
	Sign    = donburi.NewTag().SetName("Sign")
)

// Resolv tags for trigger collision
const (
	ResolvPlayer = "player"
	ResolvKey    = "key"
	ResolvDoor   = "door"
	ResolvDecor  = "decor"
)
