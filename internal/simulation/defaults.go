package simulation

import "time"

// DefaultRules returns the tuning used when the data file omits rules
func DefaultRules() Rules {
	return Rules{
		MoveSpeed:    240,
		JumpVelocity: 560,
		Gravity:      1500,
		Drag:         1800,
		MaxFallSpeed: 900,
		PlayerWidth:  28,
		PlayerHeight: 36,

		JumpBuffer: 140 * time.Millisecond,
		CoyoteTime: 140 * time.Millisecond,

		PowerDuration: 6000 * time.Millisecond,

		ChaseSpeed: 60,
		FleeSpeed:  110,
		EnemySize:  30,

		MaxHealth:      100,
		ContactDamage:  10,
		DamageCooldown: 650 * time.Millisecond,

		PickupSize:  18,
		OrbScore:    10,
		BonusScore:  25,
		DefeatScore: 50,
	}
}

// DefaultHUD returns the default HUD configuration
func DefaultHUD() HUDConfig {
	return HUDConfig{
		ShowScore:   true,
		ShowSession: true,
		Position:    "top-left",
		Opacity:     0.7,
	}
}

// DefaultConfig returns the built-in game: two levels, two body systems and
// three narrative variants.
func DefaultConfig() *Config {
	return &Config{
		Rules:  DefaultRules(),
		Levels: []LevelConfig{circulatoryLevel(), lungsLevel()},
		Systems: []SystemConfig{
			{
				ID:    "heart",
				Name:  "Heart",
				Level: "circulatory",
				Blurb: "The pump is sputtering. Clear the arteries to restore the beat.",
			},
			{
				ID:           "lungs",
				Name:         "Lungs",
				Level:        "lungs",
				Prerequisite: "heart",
				Blurb:        "The airways are clogged. Restore the flow of oxygen.",
			},
		},
		HUD: DefaultHUD(),
		Sequences: map[string]SequenceConfig{
			"clinic":    clinicSequence(),
			"cinematic": cinematicSequence(),
			"express":   expressSequence(),
		},
		DefaultSequence: "clinic",
	}
}

// ground returns a floor strip along the bottom of a level.
func ground(width, height float64) Box {
	return Box{X: 0, Y: height - 40, W: width, H: 40}
}

func circulatoryLevel() LevelConfig {
	const w, h = 2880, 540
	return LevelConfig{
		ID:              "circulatory",
		Name:            "Circulatory System",
		System:          "heart",
		Width:           w,
		Height:          h,
		EnergyThreshold: 10,
		Spawn:           Point{X: 80, Y: 440},
		Platforms: []Box{
			ground(w, h),
			{X: 260, Y: 400, W: 160, H: 18},
			{X: 520, Y: 330, W: 140, H: 18},
			{X: 780, Y: 400, W: 180, H: 18},
			{X: 1060, Y: 300, W: 160, H: 18},
			{X: 1340, Y: 380, W: 200, H: 18},
			{X: 1660, Y: 310, W: 140, H: 18},
			{X: 1940, Y: 390, W: 180, H: 18},
			{X: 2240, Y: 320, W: 160, H: 18},
			{X: 2540, Y: 400, W: 200, H: 18},
		},
		Energy: []Point{
			{X: 340, Y: 370}, {X: 590, Y: 300}, {X: 870, Y: 370},
			{X: 1140, Y: 270}, {X: 1440, Y: 350}, {X: 1730, Y: 280},
			{X: 2030, Y: 360}, {X: 2320, Y: 290}, {X: 2640, Y: 370},
			{X: 1200, Y: 470}, {X: 1900, Y: 470}, {X: 2760, Y: 470},
		},
		Bonus:   []Point{{X: 1140, Y: 230}},
		Enemies: []Point{{X: 900, Y: 250}, {X: 1700, Y: 200}, {X: 2400, Y: 240}},
		Facts: []string{
			"Your heart beats about 100,000 times every day.",
			"Red blood cells carry oxygen from the lungs to every part of the body.",
		},
		Banner: "Collect 10 energy orbs, then grab the power capsule or defeat a germ!",
	}
}

func lungsLevel() LevelConfig {
	const w, h = 3200, 540
	return LevelConfig{
		ID:              "lungs",
		Name:            "Lungs",
		System:          "lungs",
		Width:           w,
		Height:          h,
		EnergyThreshold: 12,
		Spawn:           Point{X: 80, Y: 440},
		Platforms: []Box{
			ground(w, h),
			{X: 240, Y: 390, W: 140, H: 18},
			{X: 470, Y: 320, W: 140, H: 18},
			{X: 700, Y: 250, W: 160, H: 18},
			{X: 980, Y: 340, W: 160, H: 18},
			{X: 1260, Y: 280, W: 140, H: 18},
			{X: 1520, Y: 380, W: 200, H: 18},
			{X: 1820, Y: 300, W: 160, H: 18},
			{X: 2100, Y: 230, W: 140, H: 18},
			{X: 2380, Y: 330, W: 180, H: 18},
			{X: 2680, Y: 260, W: 160, H: 18},
			{X: 2950, Y: 380, W: 180, H: 18},
		},
		Energy: []Point{
			{X: 310, Y: 360}, {X: 540, Y: 290}, {X: 780, Y: 220},
			{X: 1060, Y: 310}, {X: 1330, Y: 250}, {X: 1620, Y: 350},
			{X: 1900, Y: 270}, {X: 2170, Y: 200}, {X: 2470, Y: 300},
			{X: 2760, Y: 230}, {X: 3040, Y: 350}, {X: 1450, Y: 470},
			{X: 2250, Y: 470}, {X: 3120, Y: 470},
		},
		Bonus:   []Point{{X: 2170, Y: 150}},
		Enemies: []Point{{X: 800, Y: 200}, {X: 1400, Y: 180}, {X: 2000, Y: 160}, {X: 2700, Y: 180}},
		Facts: []string{
			"Your lungs hold about 300 million tiny air sacs called alveoli.",
			"The diaphragm is the muscle that pulls air into your lungs.",
		},
		Banner: "Collect 12 energy orbs, then grab the power capsule or defeat a germ!",
	}
}

func clinicSequence() SequenceConfig {
	return SequenceConfig{
		Start: "boot",
		Steps: []StepConfig{
			{ID: "boot", Kind: KindBoot, Next: "title"},
			{ID: "title", Kind: KindTitle, Title: "MicroMedics", Lines: []string{"A journey through the human body"}, Next: "intro"},
			{ID: "intro", Kind: KindDialog, Title: "Dr. Cell", Lines: []string{
				"Welcome aboard, medic! Our patient is in trouble.",
				"Shrink down, enter the bloodstream and restore the heart's energy.",
			}, Next: "circulatory"},
			{ID: "circulatory", Kind: KindLevel, Level: "circulatory", Next: "heart-report"},
			{ID: "heart-report", Kind: KindDialog, Title: "Dr. Cell", Lines: []string{
				"Great work! You earned a star.",
				"Spend it on the body map to repair the heart and open the way to the lungs.",
			}, Next: "map"},
			{ID: "map", Kind: KindHub, Title: "Body Map", Next: "debrief"},
			{ID: "debrief", Kind: KindDebrief, Title: "Mission Debrief", Lines: []string{
				"Every system is running again. The patient is smiling.",
			}},
		},
	}
}

func cinematicSequence() SequenceConfig {
	return SequenceConfig{
		Start: "boot",
		Steps: []StepConfig{
			{ID: "boot", Kind: KindBoot, Next: "title"},
			{ID: "title", Kind: KindTitle, Title: "MicroMedics", Lines: []string{"A journey through the human body"}, Next: "briefing"},
			{ID: "briefing", Kind: KindCinematic, Title: "Mission Briefing", Lines: []string{
				"Somewhere inside a tired patient, the systems are failing.",
				"The heart pumps weakly. The lungs wheeze.",
				"Only a microscopic medic can fix them from the inside.",
			}, Next: "map"},
			{ID: "map", Kind: KindHub, Title: "Body Map", Next: "debrief"},
			{ID: "debrief", Kind: KindDebrief, Title: "Mission Debrief", Lines: []string{
				"Heart and lungs restored. Mission complete!",
			}},
		},
	}
}

func expressSequence() SequenceConfig {
	return SequenceConfig{
		Start: "boot",
		Steps: []StepConfig{
			{ID: "boot", Kind: KindBoot, Next: "title"},
			{ID: "title", Kind: KindTitle, Title: "MicroMedics", Lines: []string{"A journey through the human body"}, Next: "circulatory"},
			{ID: "circulatory", Kind: KindLevel, Level: "circulatory", Next: "travel"},
			{ID: "travel", Kind: KindDialog, Title: "In transit", Lines: []string{
				"Riding a red blood cell up the pulmonary artery...",
			}, Next: "lungs"},
			{ID: "lungs", Kind: KindLevel, Level: "lungs", Next: "map"},
			{ID: "map", Kind: KindHub, Title: "Body Map", Next: "debrief"},
			{ID: "debrief", Kind: KindDebrief, Title: "Mission Debrief", Lines: []string{
				"You raced through two systems. Repairs complete!",
			}},
		},
	}
}
