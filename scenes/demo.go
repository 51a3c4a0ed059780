package scenes

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/smoothtick/assets"
	cfg "github.com/automoto/smoothtick/config"
	"github.com/automoto/smoothtick/scene"
	"github.com/automoto/smoothtick/systems"
	factory "github.com/automoto/smoothtick/systems/factory"
)

// DemoScene owns the node tree and the ECS whose systems are the fixed-tick
// logic. The loop driver calls Tick once per consumed tick; everything the
// systems write to the nodes gets blended at render time.
type DemoScene struct {
	ecs   *ecs.ECS
	root  *scene.Node
	level *assets.Level
}

// NewDemoScene loads the level and builds the scene tree and entities.
func NewDemoScene() (*DemoScene, error) {
	level, err := assets.LoadLevel(cfg.Demo.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("demo scene: %w", err)
	}

	s := &DemoScene{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		root:  scene.NewGroup(),
		level: level,
	}
	s.configure()
	return s, nil
}

func (s *DemoScene) configure() {
	d := cfg.Demo

	// Tick systems, run once per fixed tick in registration order.
	s.ecs.AddSystem(systems.UpdateBackground)
	s.ecs.AddSystem(systems.UpdateBouncers)
	s.ecs.AddSystem(systems.UpdateOrbiters)
	s.ecs.AddSystem(systems.UpdatePlatforms)
	s.ecs.AddSystem(systems.UpdateFades)

	// Collision space and level walls.
	factory.CreateSpace(s.ecs, s.level.Width, s.level.Height, d.CellSize, d.CellSize)
	for _, w := range s.level.Walls {
		factory.CreateWall(s.ecs, w.X, w.Y, w.W, w.H)
	}

	// Background first so it draws behind everything.
	factory.CreateBackground(s.ecs, s.root, s.level, d.ScrollSpeedX, d.ScrollSpeedY)

	// Bouncers fan out from the spawn point, or the level center without one.
	spawnX, spawnY := float64(s.level.Width)/2, float64(s.level.Height)/2
	if sp, ok := s.level.Spawn("bouncer"); ok {
		spawnX, spawnY = sp.X, sp.Y
	}
	for i := 0; i < d.BouncerCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(d.BouncerCount)
		factory.CreateBouncer(s.ecs, s.root,
			spawnX, spawnY, d.BouncerSize,
			d.BouncerSpeed*math.Cos(angle),
			d.BouncerSpeed*math.Sin(angle))
	}

	// Orbiter cluster under a rotating grouping node.
	_, group := factory.CreateCluster(s.ecs, s.root, d.OrbiterCenterX, d.OrbiterCenterY, d.OrbitSpeed/4)
	for i := 0; i < d.OrbiterCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(d.OrbiterCount)
		factory.CreateOrbiter(s.ecs, group,
			d.OrbiterSize, d.OrbitRadius, angle, d.OrbitSpeed, d.OrbiterSpin)
	}

	// Floating platform on a tween sequence.
	factory.CreateFloatingPlatform(s.ecs, s.root,
		float64(s.level.Width)/2, float64(s.level.Height)-80,
		d.PlatformW, d.PlatformH, d.PlatformTravel, d.PlatformPeriod)
}

// Root returns the scene tree handed to the renderer.
func (s *DemoScene) Root() *scene.Node { return s.root }

// Tick advances all game logic by exactly one fixed tick.
func (s *DemoScene) Tick() {
	s.ecs.Update()
}
