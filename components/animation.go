package components

import (
	"github.com/automoto/duality/assets/animations"
	"github.com/automoto/duality/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Animations       map[config.AnimationTag]*animations.Animation
	Mirrored         bool

	tag           config.AnimationTag
	hitbox        config.Hitbox
	defaultHitbox config.Hitbox
}

// NewAnimationData builds one clock per definition and starts on initial.
func NewAnimationData(defs map[config.AnimationTag]config.AnimationDef, initial config.AnimationTag, hitbox config.Hitbox) AnimationData {
	a := AnimationData{
		Animations:    make(map[config.AnimationTag]*animations.Animation, len(defs)),
		hitbox:        hitbox,
		defaultHitbox: hitbox,
	}
	for tag, def := range defs {
		a.Animations[tag] = animations.NewAnimation(def.Frames, def.FPS, def.Loop)
	}
	a.Play(initial)
	return a
}

// Play switches to tag. Requesting the active tag keeps its clock running.
func (a *AnimationData) Play(tag config.AnimationTag) {
	if a.tag == tag && (a.CurrentAnimation != nil || a.Animations[tag] == nil) {
		return
	}

	a.tag = tag
	anim, ok := a.Animations[tag]
	if !ok {
		// No clip for this tag, clear current
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
}

func (a *AnimationData) CurrentTag() config.AnimationTag {
	return a.tag
}

func (a *AnimationData) SetMirror(mirrored bool) {
	a.Mirrored = mirrored
}

func (a *AnimationData) SetHitbox(w, h, offsetX, offsetY float64) {
	a.hitbox = config.Hitbox{Width: w, Height: h, OffsetX: offsetX, OffsetY: offsetY}
}

func (a *AnimationData) ResetHitbox() {
	a.hitbox = a.defaultHitbox
}

func (a *AnimationData) Hitbox() config.Hitbox {
	return a.hitbox
}

// Frame is the sheet index to draw, or -1 without an active clip.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return -1
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
