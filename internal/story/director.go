// Package story sequences the narrative beats of a session: title, dialog,
// levels, the body map and the debrief. Sequences are data; the Director is
// the one state machine that walks them.
package story

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/micromedics/internal/simulation"
)

var (
	// ErrInvalidTrigger is returned when a trigger does not apply to the current step.
	ErrInvalidTrigger = errors.New("trigger not valid for current step")
	// ErrUnknownStep is returned when a sequence points at a step that does not exist.
	ErrUnknownStep = errors.New("unknown step")
)

// Kind is the type of a narrative beat.
type Kind string

const (
	Boot      Kind = simulation.KindBoot
	Title     Kind = simulation.KindTitle
	Dialog    Kind = simulation.KindDialog
	Cinematic Kind = simulation.KindCinematic
	Level     Kind = simulation.KindLevel
	Hub       Kind = simulation.KindHub
	Debrief   Kind = simulation.KindDebrief
)

// Trigger moves the director from one step to another.
type Trigger int

const (
	// Proceed advances past a boot, title, dialog, cinematic or debrief step.
	Proceed Trigger = iota
	// LevelComplete leaves a level step after its objective is met.
	LevelComplete
	// LevelFailed restarts the current level step.
	LevelFailed
	// HubPlay starts a level from the hub; the argument is the level id.
	HubPlay
	// HubProceed leaves the hub for its next step.
	HubProceed
)

func (t Trigger) String() string {
	switch t {
	case Proceed:
		return "proceed"
	case LevelComplete:
		return "level-complete"
	case LevelFailed:
		return "level-failed"
	case HubPlay:
		return "hub-play"
	case HubProceed:
		return "hub-proceed"
	default:
		return "unknown"
	}
}

// Step is one narrative beat.
type Step struct {
	ID    string
	Kind  Kind
	Title string
	Lines []string
	Level string
	Next  string

	// FromHub is set on level steps started from the body map.
	FromHub bool
}

// Director walks a sequence of steps.
type Director struct {
	steps    map[string]Step
	start    string
	current  Step
	finished bool

	// OnEnter is called every time a step is entered, including re-entering
	// a level after a failure.
	OnEnter func(Step)
}

// NewDirector builds a director for a sequence, positioned on its start step.
func NewDirector(seq simulation.SequenceConfig) (*Director, error) {
	d := &Director{steps: make(map[string]Step, len(seq.Steps)), start: seq.Start}
	for _, sc := range seq.Steps {
		d.steps[sc.ID] = Step{
			ID:    sc.ID,
			Kind:  Kind(sc.Kind),
			Title: sc.Title,
			Lines: sc.Lines,
			Level: sc.Level,
			Next:  sc.Next,
		}
	}
	start, ok := d.steps[seq.Start]
	if !ok {
		return nil, fmt.Errorf("start %q: %w", seq.Start, ErrUnknownStep)
	}
	d.current = start
	return d, nil
}

// Current returns the active step.
func (d *Director) Current() Step { return d.current }

// Finished reports whether the sequence has run past its last step.
func (d *Director) Finished() bool { return d.finished }

// Restart returns to the start step.
func (d *Director) Restart() {
	d.finished = false
	d.enter(d.steps[d.start])
}

// Fire applies a trigger. arg is the level id for HubPlay and ignored otherwise.
// An invalid trigger leaves the director where it was.
func (d *Director) Fire(trigger Trigger, arg string) (Step, error) {
	if d.finished {
		return d.current, fmt.Errorf("%s after sequence end: %w", trigger, ErrInvalidTrigger)
	}
	cur := d.current

	switch {
	case trigger == Proceed && cur.Kind != Level && cur.Kind != Hub:
		return d.advance(cur.Next)

	case trigger == LevelComplete && cur.Kind == Level:
		return d.advance(cur.Next)

	case trigger == LevelFailed && cur.Kind == Level:
		log.Printf("Story: retrying level %s", cur.Level)
		d.enter(cur)
		return d.current, nil

	case trigger == HubPlay && cur.Kind == Hub:
		if arg == "" {
			return cur, fmt.Errorf("hub play without a level: %w", ErrInvalidTrigger)
		}
		d.enter(Step{
			ID:      cur.ID + "/" + arg,
			Kind:    Level,
			Title:   cur.Title,
			Level:   arg,
			Next:    cur.ID,
			FromHub: true,
		})
		return d.current, nil

	case trigger == HubProceed && cur.Kind == Hub:
		return d.advance(cur.Next)
	}
	return cur, fmt.Errorf("%s on %s step %q: %w", trigger, cur.Kind, cur.ID, ErrInvalidTrigger)
}

// advance moves to the step named next. An empty name ends the sequence.
func (d *Director) advance(next string) (Step, error) {
	if next == "" {
		d.finished = true
		log.Printf("Story: sequence finished after %s", d.current.ID)
		return d.current, nil
	}
	step, ok := d.steps[next]
	if !ok {
		return d.current, fmt.Errorf("step %q: %w", next, ErrUnknownStep)
	}
	d.enter(step)
	return d.current, nil
}

func (d *Director) enter(step Step) {
	d.current = step
	log.Printf("Story: entering %s (%s)", step.ID, step.Kind)
	if d.OnEnter != nil {
		d.OnEnter(step)
	}
}
