package level

import (
	"log"
	"time"

	"chosenoffset.com/micromedics/internal/core/geom"
	"chosenoffset.com/micromedics/internal/entity"
	"chosenoffset.com/micromedics/internal/simulation"
)

// Outcome is the result of a level attempt so far
type Outcome int

const (
	Running Outcome = iota
	Completed
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// EventKind identifies something that happened during a tick
type EventKind int

const (
	EventEnergy EventKind = iota
	EventBonus
	EventEnemyDefeated
	EventPlayerHurt
	EventPowerStart
	EventPowerEnd
	EventJump
	EventCompleted
	EventFailed
)

// Event is reported to the presentation layer (sound, toasts, logs).
type Event struct {
	Kind EventKind
	Pos  geom.Vec
}

// Stats is the read-only view of a run for the HUD.
type Stats struct {
	Level          string
	Score          int
	Health         int
	MaxHealth      int
	Energy         int
	EnergyGoal     int
	PowerActive    bool
	PowerRemaining time.Duration
	BonusCollected bool
	EnemyDefeated  bool
}

// Level is one attempt at a level. Call Initialize before the first Tick and
// Dispose when leaving; Initialize again to restart.
type Level struct {
	Config simulation.LevelConfig
	Rules  simulation.Rules

	Player     entity.Body
	Controller *entity.Controller
	Enemies    []*entity.Enemy
	Pickups    []*entity.Pickup
	Power      *PowerTimer
	Objective  Objective
	Run        RunState

	solids  []geom.Rect
	bounds  geom.Rect
	clock   time.Duration
	outcome Outcome
	events  []Event
	live    bool
}

// New creates a level from its configuration. Nothing is spawned until Initialize.
func New(cfg simulation.LevelConfig, rules simulation.Rules) *Level {
	return &Level{
		Config: cfg,
		Rules:  rules,
	}
}

// Initialize spawns the player, enemies and pickups and resets the run.
func (l *Level) Initialize() {
	l.bounds = l.Config.Bounds()
	l.solids = make([]geom.Rect, 0, len(l.Config.Platforms))
	for _, p := range l.Config.Platforms {
		l.solids = append(l.solids, p.Rect())
	}

	l.Player = entity.NewBody(l.Config.Spawn.Vec(), l.Rules.PlayerWidth, l.Rules.PlayerHeight)
	l.Controller = entity.NewController(l.Rules)

	l.Enemies = make([]*entity.Enemy, 0, len(l.Config.Enemies))
	for i, pos := range l.Config.Enemies {
		l.Enemies = append(l.Enemies, entity.NewEnemy(i+1, pos.Vec(), l.Rules.EnemySize))
	}

	l.Pickups = make([]*entity.Pickup, 0, len(l.Config.Energy)+len(l.Config.Bonus))
	for _, pos := range l.Config.Energy {
		l.Pickups = append(l.Pickups, &entity.Pickup{Kind: entity.PickupEnergy, Pos: pos.Vec(), Size: l.Rules.PickupSize})
	}
	for _, pos := range l.Config.Bonus {
		l.Pickups = append(l.Pickups, &entity.Pickup{Kind: entity.PickupBonus, Pos: pos.Vec(), Size: l.Rules.PickupSize * 1.4})
	}

	l.Power = NewPowerTimer(l.Rules.PowerDuration)
	l.Power.OnChange = l.setVulnerable
	l.Objective = NewObjective(l.Config.EnergyThreshold)
	l.Run = NewRunState(l.Rules.MaxHealth, l.Rules.DamageCooldown)

	l.clock = 0
	l.outcome = Running
	l.events = nil
	l.live = true

	log.Printf("Level %s started (goal %d energy, %d enemies)", l.Config.ID, l.Objective.Threshold, len(l.Enemies))
}

// Dispose releases the level's entities. The level must be re-initialized before reuse.
func (l *Level) Dispose() {
	l.Enemies = nil
	l.Pickups = nil
	l.solids = nil
	l.events = nil
	if l.Power != nil {
		l.Power.OnChange = nil
	}
	l.live = false
}

// Tick advances the level by dt. Once the outcome is decided the level is
// frozen and further ticks do nothing.
func (l *Level) Tick(dt time.Duration, in entity.Input) Outcome {
	if !l.live || l.outcome != Running {
		return l.outcome
	}
	l.clock += dt
	secs := dt.Seconds()

	if l.Controller.Update(l.clock, in, &l.Player, dt) {
		l.emit(EventJump, l.Player.Center())
	}
	l.Player.Step(secs, l.Rules.Gravity, l.Rules.MaxFallSpeed, l.solids, l.bounds)

	if l.Power.Tick(dt) {
		l.emit(EventPowerEnd, l.Player.Center())
	}

	target := l.Player.Center()
	for _, e := range l.Enemies {
		e.Steer(target, l.Power.Active(), l.Rules.ChaseSpeed, l.Rules.FleeSpeed)
		e.Move(secs, l.bounds)
	}

	l.collectPickups()
	l.resolveContacts()

	switch {
	case l.Run.Dead():
		l.outcome = Failed
		l.emit(EventFailed, l.Player.Center())
		log.Printf("Level %s failed (score %d)", l.Config.ID, l.Run.Score)
	case l.Objective.Complete():
		l.outcome = Completed
		l.emit(EventCompleted, l.Player.Center())
		log.Printf("Level %s completed (score %d)", l.Config.ID, l.Run.Score)
	}
	return l.outcome
}

func (l *Level) collectPickups() {
	player := l.Player.Rect()
	for _, p := range l.Pickups {
		if p.Consumed || !player.Overlaps(p.Rect()) {
			continue
		}
		p.Consumed = true
		switch p.Kind {
		case entity.PickupEnergy:
			l.Objective.AddEnergy()
			l.Run.Score += l.Rules.OrbScore
			l.emit(EventEnergy, p.Pos)
		case entity.PickupBonus:
			l.Objective.CollectBonus()
			l.Run.Score += l.Rules.BonusScore
			l.Power.Activate()
			l.emit(EventBonus, p.Pos)
			l.emit(EventPowerStart, p.Pos)
		}
	}
}

func (l *Level) resolveContacts() {
	player := l.Player.Rect()
	survivors := l.Enemies[:0]
	for _, e := range l.Enemies {
		if !player.Overlaps(e.Body.Rect()) {
			survivors = append(survivors, e)
			continue
		}
		if l.Power.Active() && e.Vulnerable {
			l.Objective.DefeatEnemy()
			l.Run.Score += l.Rules.DefeatScore
			l.emit(EventEnemyDefeated, e.Body.Center())
			continue
		}
		if l.Run.Damage(l.clock, l.Rules.ContactDamage) {
			l.emit(EventPlayerHurt, l.Player.Center())
		}
		survivors = append(survivors, e)
	}
	for i := len(survivors); i < len(l.Enemies); i++ {
		l.Enemies[i] = nil
	}
	l.Enemies = survivors
}

// setVulnerable mirrors the power state onto every current enemy.
func (l *Level) setVulnerable(active bool) {
	for _, e := range l.Enemies {
		e.Vulnerable = active
	}
}

func (l *Level) emit(kind EventKind, pos geom.Vec) {
	l.events = append(l.events, Event{Kind: kind, Pos: pos})
}

// DrainEvents returns and clears the events produced since the last call.
func (l *Level) DrainEvents() []Event {
	events := l.events
	l.events = nil
	return events
}

// Outcome returns the current outcome.
func (l *Level) Outcome() Outcome { return l.outcome }

// Clock returns the time spent in this attempt.
func (l *Level) Clock() time.Duration { return l.clock }

// Solids returns the static platform rectangles.
func (l *Level) Solids() []geom.Rect { return l.solids }

// Stats returns the HUD view of the run.
func (l *Level) Stats() Stats {
	return Stats{
		Level:          l.Config.Name,
		Score:          l.Run.Score,
		Health:         l.Run.Health,
		MaxHealth:      l.Run.MaxHealth,
		Energy:         l.Objective.Energy,
		EnergyGoal:     l.Objective.Threshold,
		PowerActive:    l.Power.Active(),
		PowerRemaining: l.Power.Remaining(),
		BonusCollected: l.Objective.BonusCollected,
		EnemyDefeated:  l.Objective.EnemyDefeated,
	}
}
