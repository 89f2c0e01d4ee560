package components

import "github.com/yohamta/donburi"

// KeyData marks the pickup that unlocks the level's door.
type KeyData struct {
	Collected bool
	Rest      Vector // top-left before bobbing
	BobOffset float64
}

// DoorData marks the level exit.
type DoorData struct {
	Open bool
}

// KeySlotData is the indicator above the door showing whether the key is held.
type KeySlotData struct {
	Filled bool
}

type SignData struct {
	Text string
}

var (
	Key     = donburi.NewComponentType[KeyData]()
	Door    = donburi.NewComponentType[DoorData]()
	KeySlot = donburi.NewComponentType[KeySlotData]()
	Sign    = donburi.NewComponentType[SignData]()
)
