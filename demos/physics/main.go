// physics drops boxes into a pit of static walls. Click to
// spawn a box at the cursor. Contacts are forwarded into a donburi world and
// counted by a subscriber.
package main

import (
	"fmt"
	"log"

	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/ecs"
	"github.com/yohamta/donburi"
)

const (
	boxCount   = 60
	gravity    = -0.01
	elasticity = 0.3
	maxBoxes   = 400
)

// crate flashes briefly after each hit and removes itself when it falls out
// of the world.
type crate struct {
	sprig.Object
	base  sprig.Color
	flash int
}

func (c *crate) CollideWithObject(other *sprig.Object) bool {
	if other.IsStatic() {
		c.flash = 6
	}
	return true
}

func (c *crate) Update() {
	c.Object.Update()
	if c.flash > 0 {
		c.flash--
		c.Color = c.base.Lerp(sprig.ColorWhite, float64(c.flash)/6)
	}
	if c.Pos.Y < -50 {
		c.Destroy()
	}
}

func newCrate(rng *sprig.Rand, pos sprig.Vec2) *crate {
	c := &crate{}
	c.Init(pos, sprig.Vec2{X: rng.Float(0.6, 1.4), Y: rng.Float(0.6, 1.4)})
	c.SetMass(c.Size.X * c.Size.Y)
	c.SetCollision()
	c.Elasticity = elasticity
	c.Damping = 0.995
	c.base = rng.Color()
	c.Color = c.base
	return c
}

func staticBlock(pos, size sprig.Vec2, color sprig.Color) *sprig.Object {
	o := sprig.NewObject(pos, size)
	o.SetMass(0)
	o.SetCollision()
	o.Color = color
	return o
}

func main() {
	cfg := sprig.DefaultConfig()
	cfg.Gravity = sprig.Vec2{Y: gravity}
	cfg.Response = sprig.ResponseBounce
	world := sprig.NewWorld(cfg)

	ecsWorld := donburi.NewWorld()
	world.SetEventSink(ecs.NewDonburiSink(ecsWorld))
	contacts := 0
	ecs.CollisionEventType.Subscribe(ecsWorld, func(w donburi.World, e sprig.CollisionEvent) {
		contacts++
	})

	gray := sprig.Color{R: 0.4, G: 0.4, B: 0.45, A: 1}
	world.Add(staticBlock(sprig.Vec2{Y: -10}, sprig.Vec2{X: 36, Y: 1}, gray))
	world.Add(staticBlock(sprig.Vec2{X: -18, Y: 0}, sprig.Vec2{X: 1, Y: 20}, gray))
	world.Add(staticBlock(sprig.Vec2{X: 18, Y: 0}, sprig.Vec2{X: 1, Y: 20}, gray))

	rng := sprig.NewRand(42)
	for i := 0; i < boxCount; i++ {
		world.Add(newCrate(rng, sprig.Vec2{X: rng.Float(-15, 15), Y: rng.Float(0, 20)}))
	}

	world.SetUpdateFunc(func() error {
		ecs.CollisionEventType.ProcessEvents(ecsWorld)
		in := world.Input()
		if in.MouseWasPressed(sprig.MouseButtonLeft) && len(world.Objects()) < maxBoxes {
			world.Add(newCrate(rng, in.MouseWorldPos(world.Camera())))
		}
		sprig.DebugText(fmt.Sprintf("contacts: %d", contacts), sprig.Vec2{X: -17, Y: 11}, sprig.ColorWhite, 0)
		return nil
	})

	if err := sprig.Run(world, sprig.RunConfig{
		Title:      "sprig - physics",
		ClearColor: sprig.Color{R: 0.06, G: 0.06, B: 0.09, A: 1},
		ShowFPS:    true,
	}); err != nil {
		log.Fatal(err)
	}
}
