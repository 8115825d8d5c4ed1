package game

import (
	"time"

	"chosenoffset.com/micromedics/internal/entity"
	"chosenoffset.com/micromedics/internal/level"
	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/simulation"
)

// Scene is a level being played on screen: the level simulation plus its
// camera and the pause after the outcome is decided.
type Scene struct {
	Level  *level.Level
	Camera Camera

	ViewWidth  int
	ViewHeight int

	// SceneTexture is the offscreen world layer, tinted while empowered.
	SceneTexture render.Image

	finishedFor time.Duration
	rewarded    bool
}

// NewScene creates and initializes a level scene.
func NewScene(cfg simulation.LevelConfig, rules simulation.Rules, width, height int) *Scene {
	s := &Scene{
		Level:      level.New(cfg, rules),
		ViewWidth:  width,
		ViewHeight: height,
	}
	s.Level.Initialize()
	s.UpdateCamera()
	return s
}

// Update ticks the level and the post-outcome pause. It returns the outcome
// and whether the pause is over.
func (s *Scene) Update(in entity.Input, dt time.Duration) (level.Outcome, bool) {
	outcome := s.Level.Tick(dt, in)
	s.UpdateCamera()
	if outcome == level.Running {
		return outcome, false
	}
	s.finishedFor += dt
	return outcome, s.finishedFor >= outcomeDelay
}

// Dispose releases the level and the offscreen texture.
func (s *Scene) Dispose() {
	s.Level.Dispose()
	if s.SceneTexture != nil {
		s.SceneTexture.Dispose()
		s.SceneTexture = nil
	}
}

// UpdateCamera updates the camera to follow the player.
func (s *Scene) UpdateCamera() {
	center := s.Level.Player.Center()
	// Center camera on player
	s.Camera.X = center.X - float64(s.ViewWidth)/2
	s.Camera.Y = center.Y - float64(s.ViewHeight)/2

	// Clamp camera to level bounds
	maxX := s.Level.Config.Width - float64(s.ViewWidth)
	maxY := s.Level.Config.Height - float64(s.ViewHeight)
	if s.Camera.X > maxX {
		s.Camera.X = maxX
	}
	if s.Camera.Y > maxY {
		s.Camera.Y = maxY
	}
	if s.Camera.X < 0 {
		s.Camera.X = 0
	}
	if s.Camera.Y < 0 {
		s.Camera.Y = 0
	}
}

// readInput samples the movement keys for this tick.
func readInput(in render.InputManager) entity.Input {
	return entity.Input{
		Left:  in.IsKeyPressed(render.KeyA) || in.IsKeyPressed(render.KeyLeft),
		Right: in.IsKeyPressed(render.KeyD) || in.IsKeyPressed(render.KeyRight),
		Jump: in.IsKeyJustPressed(render.KeySpace) ||
			in.IsKeyJustPressed(render.KeyW) ||
			in.IsKeyJustPressed(render.KeyUp),
	}
}
