package progress

import (
	"encoding/json"
	"fmt"
)

// record is the persisted shape of State.
//
//	{ "stars": 2, "systems": {"heart": true}, "facts": ["..."], "repaired": {"heart": true} }
type record struct {
	Stars    int             `json:"stars"`
	Systems  map[string]bool `json:"systems"`
	Facts    []string        `json:"facts"`
	Repaired map[string]bool `json:"repaired,omitempty"`
}

func encode(s State) ([]byte, error) {
	rec := record{
		Stars:   s.Stars,
		Systems: make(map[string]bool, s.Unlocked.Size()),
		Facts:   s.Facts,
	}
	if rec.Facts == nil {
		rec.Facts = []string{}
	}
	s.Unlocked.Each(func(id string) { rec.Systems[id] = true })
	if s.Repaired.Size() > 0 {
		rec.Repaired = make(map[string]bool, s.Repaired.Size())
		s.Repaired.Each(func(id string) { rec.Repaired[id] = true })
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize progress: %w", err)
	}
	return data, nil
}

func decode(data []byte) (State, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return NewState(), fmt.Errorf("failed to parse progress: %w", err)
	}

	s := NewState()
	s.Stars = rec.Stars
	for id, on := range rec.Systems {
		if on {
			s.Unlocked.Put(id)
		}
	}
	for id, on := range rec.Repaired {
		if on {
			s.Repaired.Put(id)
		}
	}
	s.Facts = rec.Facts
	s.normalize()
	return s, nil
}
