package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/micromedics/internal/core/progress"
	"chosenoffset.com/micromedics/internal/hub"
	"chosenoffset.com/micromedics/internal/level"
	"chosenoffset.com/micromedics/internal/notice"
	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/session"
	"chosenoffset.com/micromedics/internal/simulation"
	"chosenoffset.com/micromedics/internal/story"
	"chosenoffset.com/micromedics/internal/ui/hubview"
	"chosenoffset.com/micromedics/internal/ui/hud"
	"chosenoffset.com/micromedics/internal/ui/narrative"
)

// Manager drives a play session: it follows the story director and routes
// every tick to the title/dialog panel, the active level or the body map.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager

	Session  *session.Context
	Director *story.Director
	Hub      *hub.Hub
	Notices  *notice.Board

	Panel   *narrative.Panel
	HubView *hubview.View
	HUD     *hud.HUD

	// Scene is the level being played, nil outside level steps.
	Scene *Scene
}

// NewManager creates a game manager for one narrative variant ("" for the default).
func NewManager(cfg *simulation.Config, variant string, store *progress.Store, r render.Renderer, input render.InputManager, width, height int) (*Manager, error) {
	seq, err := cfg.Sequence(variant)
	if err != nil {
		return nil, err
	}
	director, err := story.NewDirector(seq)
	if err != nil {
		return nil, fmt.Errorf("failed to start story: %w", err)
	}

	hudConfig := cfg.HUD
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Session:      session.New(store),
		Director:     director,
		Notices:      notice.NewBoard(),
		Panel:        narrative.NewPanel(r, input, width, height),
		HubView:      hubview.New(r, input, width, height),
		HUD:          hud.New(&hudConfig, r, width, height),
	}
	m.Hub = hub.New(cfg.Systems, store, m.Notices, m.Session.Elapsed)
	m.Session.Subscribe(m.HUD.SetSnapshot)
	m.Director.OnEnter = m.enterStep
	m.enterStep(m.Director.Current())
	return m, nil
}

// Step returns the current story step.
func (m *Manager) Step() story.Step {
	return m.Director.Current()
}

// Update updates the game state.
func (m *Manager) Update() error {
	m.Notices.Tick(tickDuration)

	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		if m.Step().Kind == story.Title {
			return render.ErrQuit
		}
		m.ReturnToTitle()
		return nil
	}

	switch m.Step().Kind {
	case story.Boot:
		m.fire(story.Proceed, "")
	case story.Title, story.Dialog, story.Cinematic, story.Debrief:
		if m.Panel.Update() {
			m.fire(story.Proceed, "")
		}
	case story.Level:
		m.updateLevel()
	case story.Hub:
		m.updateHub()
	}

	if m.Director.Finished() {
		m.ReturnToTitle()
	}
	return nil
}

// ReturnToTitle restarts the sequence and skips straight to its title card.
func (m *Manager) ReturnToTitle() {
	m.disposeScene()
	m.Director.Restart()
	for m.Step().Kind == story.Boot {
		if _, err := m.Director.Fire(story.Proceed, ""); err != nil || m.Director.Finished() {
			break
		}
	}
}

func (m *Manager) updateLevel() {
	if m.Scene == nil {
		return
	}
	outcome, done := m.Scene.Update(readInput(m.InputMgr), tickDuration)
	m.handleEvents(m.Scene.Level.DrainEvents())
	m.Session.Publish(m.Scene.Level.Stats(), m.Scene.Level.Power.Duration())

	if outcome == level.Completed && !m.Scene.rewarded {
		m.Scene.rewarded = true
		if err := m.Session.GrantReward(m.Scene.Level.Config); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	if !done {
		return
	}
	switch outcome {
	case level.Completed:
		m.fire(story.LevelComplete, "")
	case level.Failed:
		m.fire(story.LevelFailed, "")
	}
}

func (m *Manager) handleEvents(events []level.Event) {
	for _, e := range events {
		switch e.Kind {
		case level.EventPowerStart:
			m.Notices.Show("Power mode! Germs are vulnerable")
		case level.EventCompleted:
			m.Notices.Show("System stabilized! +1 star")
		case level.EventFailed:
			m.Notices.Show("Out of health. Try again!")
		}
	}
}

func (m *Manager) updateHub() {
	action := m.HubView.Update(m.Hub.Entries())
	var err error
	switch action.Kind {
	case hubview.ActionPlay:
		var levelID string
		levelID, err = m.Hub.Play(action.System)
		if err == nil {
			m.fire(story.HubPlay, levelID)
		}
	case hubview.ActionRepair:
		err = m.Hub.Repair(action.System)
	case hubview.ActionProceed:
		if err = m.Hub.Proceed(); err == nil {
			m.fire(story.HubProceed, "")
		}
	}
	if err != nil && !isAdvisory(err) {
		log.Printf("Warning: hub action failed: %v", err)
	}
}

// isAdvisory reports errors that are already shown to the player as notices.
func isAdvisory(err error) bool {
	return errors.Is(err, hub.ErrLocked) ||
		errors.Is(err, hub.ErrInsufficientStars) ||
		errors.Is(err, hub.ErrAlreadyRepaired) ||
		errors.Is(err, hub.ErrIncomplete)
}

func (m *Manager) fire(trigger story.Trigger, arg string) {
	if _, err := m.Director.Fire(trigger, arg); err != nil {
		log.Printf("Warning: story: %v", err)
	}
}

// enterStep prepares the screen for a newly entered step.
func (m *Manager) enterStep(step story.Step) {
	m.disposeScene()
	switch step.Kind {
	case story.Level:
		cfg, ok := m.Config.Level(step.Level)
		if !ok {
			log.Printf("Warning: step %s references unknown level %q", step.ID, step.Level)
			m.Notices.Show("That level is not available")
			return
		}
		m.Scene = NewScene(cfg, m.Config.Rules, m.ScreenWidth, m.ScreenHeight)
		if cfg.Banner != "" {
			m.Notices.Show(cfg.Banner)
		}
		m.Session.Publish(m.Scene.Level.Stats(), m.Scene.Level.Power.Duration())
	case story.Hub:
		// Entries are read from the store every frame
	default:
		if step.Kind == story.Debrief {
			m.Panel.SetFacts(m.Session.Snapshot(level.Stats{}).LearnedFacts)
		}
		m.Panel.Show(step)
	}
}

func (m *Manager) disposeScene() {
	if m.Scene != nil {
		m.Scene.Dispose()
		m.Scene = nil
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.Panel.Resize(outsideWidth, outsideHeight)
		m.HubView.SetSize(outsideWidth, outsideHeight)
		m.HUD.SetScreenSize(outsideWidth, outsideHeight)
		if m.Scene != nil {
			m.Scene.ViewWidth = outsideWidth
			m.Scene.ViewHeight = outsideHeight
			m.Scene.UpdateCamera()
		}
	}
	return outsideWidth, outsideHeight
}
