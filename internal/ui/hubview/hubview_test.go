package hubview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/micromedics/internal/hub"
	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/render/rendertest"
	"chosenoffset.com/micromedics/internal/simulation"
)

func testEntries() []hub.Entry {
	systems := simulation.DefaultConfig().Systems
	return []hub.Entry{
		{System: systems[0], Status: hub.NeedsRepair},
		{System: systems[1], Status: hub.Locked},
	}
}

func center(r Rect) (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

func TestLayoutCentersCards(t *testing.T) {
	v := New(&rendertest.Renderer{}, rendertest.NewInput(), 960, 540)
	cards := v.Layout(testEntries())
	require.Len(t, cards, 2)

	left := cards[0].Box.X
	right := 960 - (cards[1].Box.X + cards[1].Box.W)
	assert.Equal(t, left, right)
	assert.Equal(t, "heart", cards[0].System)
	assert.False(t, cards[0].Box.Contains(center(cards[1].Box)), "cards do not overlap")
}

func TestUpdateMapsClicksToActions(t *testing.T) {
	input := rendertest.NewInput()
	v := New(&rendertest.Renderer{}, input, 960, 540)
	entries := testEntries()
	cards := v.Layout(entries)

	tests := []struct {
		name string
		x, y int
		want Action
	}{
		{"play heart", cards[0].Play.X + 5, cards[0].Play.Y + 5, Action{Kind: ActionPlay, System: "heart"}},
		{"repair heart", cards[0].Repair.X + 5, cards[0].Repair.Y + 5, Action{Kind: ActionRepair, System: "heart"}},
		{"play locked lungs", cards[1].Play.X + 5, cards[1].Play.Y + 5, Action{Kind: ActionPlay, System: "lungs"}},
		{"proceed", v.ProceedButton().X + 5, v.ProceedButton().Y + 5, Action{Kind: ActionProceed}},
		{"empty space", 2, 2, Action{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input.Click(tt.x, tt.y)
			assert.Equal(t, tt.want, v.Update(entries))
			// Release the button between clicks
			input.EndFrame()
			v.Update(entries)
		})
	}
}

func TestHeldButtonClicksOnce(t *testing.T) {
	input := rendertest.NewInput()
	v := New(&rendertest.Renderer{}, input, 960, 540)
	entries := testEntries()
	x, y := center(v.Layout(entries)[0].Play)

	input.CursorX, input.CursorY = x, y
	input.MouseDown = true
	assert.Equal(t, ActionPlay, v.Update(entries).Kind)
	assert.Equal(t, ActionNone, v.Update(entries).Kind)
}

func TestEnterProceeds(t *testing.T) {
	input := rendertest.NewInput()
	v := New(&rendertest.Renderer{}, input, 960, 540)
	input.Press(render.KeyEnter)
	assert.Equal(t, Action{Kind: ActionProceed}, v.Update(testEntries()))
}

func TestDraw(t *testing.T) {
	r := &rendertest.Renderer{}
	v := New(r, rendertest.NewInput(), 960, 540)
	v.Draw(rendertest.NewImage(960, 540), "Body Map", hub.Stats{Stars: 3, Unlocked: 1, Facts: 2, Elapsed: 125 * time.Second}, testEntries())

	assert.True(t, r.HasText("Body Map"))
	assert.True(t, r.HasText("Stars: 3   Unlocked: 1   Facts: 2   Time: 2:05"))
	assert.True(t, r.HasText("Heart"))
	assert.True(t, r.HasText("locked"))
	assert.True(t, r.HasText("needs repair"))
	assert.True(t, r.HasText("Proceed"))
}
