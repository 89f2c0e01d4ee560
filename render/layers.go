// Package render draws a level world with primitive shapes. Renderers have
// the donburi/ecs signature so scenes can register them per layer.
package render

import "github.com/yohamta/donburi/ecs"

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)
