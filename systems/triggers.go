package systems

import (
	"github.com/automoto/duality/components"
	cfg "github.com/automoto/duality/config"
	"github.com/automoto/duality/tags"
	"github.com/yohamta/donburi"
)

// UpdateTriggers runs the key/door sequence. Touching the key while the
// level is locked unlocks the door; touching the door once unlocked marks
// the level as finished for the scene to act on.
func UpdateTriggers(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}

	level := components.Level.Get(levelEntry)
	playerObj := components.Object.Get(playerEntry)

	if !level.IsComplete {
		if keyEntry := touching(playerObj, tags.ResolvKey); keyEntry != nil {
			collectKey(w, level, keyEntry)
		}
	}

	if level.IsComplete && !level.DoorReached {
		if touching(playerObj, tags.ResolvDoor) != nil {
			level.DoorReached = true
		}
	}
}

// touching returns the first entity with tag whose bounds strictly overlap
// obj. The space query only narrows candidates down to shared cells.
func touching(obj *components.ObjectData, tag string) *donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	bounds := obj.Bounds()
	for _, o := range check.ObjectsByTags(tag) {
		other := components.ObjectData{Object: o}
		if !bounds.Overlaps(other.Bounds()) {
			continue
		}
		if entry, ok := o.Data.(*donburi.Entry); ok && entry != nil {
			return entry
		}
	}
	return nil
}

// Overlaps reports whether two entities' collision bounds intersect.
func Overlaps(a, b *donburi.Entry) bool {
	if !a.HasComponent(components.Object) || !b.HasComponent(components.Object) {
		return false
	}
	return components.Object.Get(a).Bounds().Overlaps(components.Object.Get(b).Bounds())
}

func collectKey(w donburi.World, level *components.LevelData, keyEntry *donburi.Entry) {
	key := components.Key.Get(keyEntry)
	key.Collected = true
	key.BobOffset = 0
	components.Animation.Get(keyEntry).Play(cfg.TagNoKey)

	tags.Door.Each(w, func(e *donburi.Entry) {
		components.Door.Get(e).Open = true
		components.Animation.Get(e).Play(cfg.TagDoorOpen)
	})
	tags.KeySlot.Each(w, func(e *donburi.Entry) {
		components.KeySlot.Get(e).Filled = true
	})

	level.IsComplete = true
}
