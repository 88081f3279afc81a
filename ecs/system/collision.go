package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/component"
)

// contact is the player's side of a single box overlap.
type contact struct {
	world   *ecs.World
	player  ecs.Entity
	other   ecs.Entity
	pos     *component.Transform
	vel     *component.Velocity
	state   *component.PlayerState
	spawn   component.Spawn
	respawn func(reason string)
}

// CollisionPolicy is what touching an entity of a given kind does to the
// player beyond stopping its motion. OnLand runs for the vertical pass,
// OnBump for the horizontal one. Either may be nil.
type CollisionPolicy struct {
	OnLand func(c *contact)
	OnBump func(c *contact)
}

var collisionPolicies = map[component.EntityKind]CollisionPolicy{
	component.KindTree: {},
	component.KindGoal: {
		OnLand: triggerFinale,
	},
	component.KindHazard: {
		OnLand: killPlayer,
		OnBump: killPlayer,
	},
}

// PolicyFor returns the collision response registered for kind.
func PolicyFor(kind component.EntityKind) CollisionPolicy {
	return collisionPolicies[kind]
}

func killPlayer(c *contact) {
	c.respawn("hazard")
}

func triggerFinale(c *contact) {
	f, ok := ecs.Get(c.world, c.other, component.FinaleComponent.Kind())
	if !ok || f.Active {
		return
	}
	f.Active = true
	c.world.Events().Push(ecs.Event{Kind: ecs.EventFinaleStarted, Entity: c.other})
}

// worldBox returns box b of an entity centred at (x, y) in world space.
func worldBox(x, y float64, b component.Box) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: x + b.OffsetX, Y: y + b.OffsetY}, b.W/2, b.H/2)
}

// touches is the inclusive overlap test used by the vertical pass.
func touches(bb cp.BB, p cp.Vector) bool {
	return bb.ContainsVect(p)
}

// overlapsStrict is the exclusive overlap test used by the horizontal pass.
func overlapsStrict(bb cp.BB, p cp.Vector) bool {
	return bb.L < p.X && p.X < bb.R && bb.B < p.Y && p.Y < bb.T
}

// respawnPlayer teleports the player to its spawn point and stops it.
func respawnPlayer(w *ecs.World, e ecs.Entity, pos *component.Transform, vel *component.Velocity, spawn component.Spawn, reason string) {
	pos.X = spawn.X
	pos.Y = spawn.Y
	vel.X = 0
	vel.Y = 0
	w.Events().Push(ecs.Event{Kind: ecs.EventRespawn, Entity: e, Reason: reason})
}
