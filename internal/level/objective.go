package level

// Objective tracks energy against the level threshold and the two optional
// sub-goals. Either sub-goal is enough.
type Objective struct {
	Threshold      int
	Energy         int
	BonusCollected bool
	EnemyDefeated  bool
}

// NewObjective creates an objective for a level threshold.
func NewObjective(threshold int) Objective {
	return Objective{Threshold: threshold}
}

// AddEnergy counts one energy pickup, capped at the threshold.
// Returns false if the cap was already reached.
func (o *Objective) AddEnergy() bool {
	if o.Energy >= o.Threshold {
		return false
	}
	o.Energy++
	return true
}

// CollectBonus marks the bonus sub-goal.
func (o *Objective) CollectBonus() { o.BonusCollected = true }

// DefeatEnemy marks the enemy sub-goal.
func (o *Objective) DefeatEnemy() { o.EnemyDefeated = true }

// Complete reports whether the level is won: the energy threshold is reached
// and at least one sub-goal is satisfied.
func (o Objective) Complete() bool {
	return o.Energy == o.Threshold && (o.BonusCollected || o.EnemyDefeated)
}
