package config

type AnimationDef struct {
	Frames []int
	FPS    float64
	Loop   bool
}

// CharacterAnimations maps an entity key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[AnimationTag]AnimationDef{
	"player": {
		TagStance:   {Frames: []int{0}, FPS: 8, Loop: true},
		TagStand:    {Frames: []int{4, 5}, FPS: 2, Loop: true},
		TagWalk:     {Frames: []int{1, 7, 8, 9}, FPS: 8, Loop: true},
		TagRun:      {Frames: []int{1, 7, 8, 9}, FPS: 24, Loop: true},
		TagJump:     {Frames: []int{9, 10}, FPS: 8, Loop: false},
		TagDuck:     {Frames: []int{2, 3}, FPS: 8, Loop: false},
		TagTeleport: {Frames: []int{2, 3}, FPS: 8, Loop: false},
	},
	"key": {
		TagKey:   {Frames: []int{0}, FPS: 1, Loop: true},
		TagNoKey: {Frames: []int{1}, FPS: 1, Loop: true},
	},
	"door": {
		TagDoorClose: {Frames: []int{0}, FPS: 1, Loop: true},
		TagDoorOpen:  {Frames: []int{1}, FPS: 1, Loop: true},
	},
}
