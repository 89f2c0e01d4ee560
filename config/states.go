package config

// AnimationTag names an animation clip the player controller can request.
type AnimationTag string

const (
	TagStance   AnimationTag = "stance"
	TagStand    AnimationTag = "stand"
	TagWalk     AnimationTag = "walk"
	TagRun      AnimationTag = "run"
	TagJump     AnimationTag = "jump"
	TagDuck     AnimationTag = "duck"
	TagTeleport AnimationTag = "teleport"

	// Trigger entity display variants
	TagKey       AnimationTag = "key"
	TagNoKey     AnimationTag = "no_key"
	TagDoorClose AnimationTag = "closed"
	TagDoorOpen  AnimationTag = "open"
)
