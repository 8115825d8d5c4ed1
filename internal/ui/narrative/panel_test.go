package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/render/rendertest"
	"chosenoffset.com/micromedics/internal/story"
)

func newPanel() (*Panel, *rendertest.Renderer, *rendertest.Input) {
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	return NewPanel(r, in, 960, 540), r, in
}

func TestContinueKeys(t *testing.T) {
	for _, key := range []render.Key{render.KeySpace, render.KeyEnter} {
		p, _, in := newPanel()
		p.Show(story.Step{ID: "intro", Kind: story.Dialog, Lines: []string{"Hello"}})

		assert.False(t, p.Update())
		in.Press(key)
		assert.True(t, p.Update())
	}
}

func TestClickContinuesOnlyOnNewPress(t *testing.T) {
	p, _, in := newPanel()
	in.MouseDown = true
	p.Show(story.Step{ID: "intro", Kind: story.Dialog})

	assert.False(t, p.Update(), "button held since the previous screen")
	in.MouseDown = false
	assert.False(t, p.Update())
	in.Click(10, 10)
	assert.True(t, p.Update())
}

func TestCinematicRevealsLinesFirst(t *testing.T) {
	p, r, in := newPanel()
	p.Show(story.Step{ID: "brief", Kind: story.Cinematic, Title: "Briefing", Lines: []string{"one", "two", "three"}})

	p.Draw(rendertest.NewImage(960, 540))
	assert.True(t, r.HasText("one"))
	assert.False(t, r.HasText("two"))

	results := make([]bool, 0, 3)
	for i := 0; i < 3; i++ {
		in.Press(render.KeySpace)
		results = append(results, p.Update())
		in.EndFrame()
	}
	assert.Equal(t, []bool{false, false, true}, results)

	r.Reset()
	p.Draw(rendertest.NewImage(960, 540))
	assert.True(t, r.HasText("three"))
}

func TestDrawKinds(t *testing.T) {
	tests := []struct {
		step story.Step
		want []string
	}{
		{story.Step{Kind: story.Boot}, []string{"Loading..."}},
		{story.Step{Kind: story.Title, Title: "MicroMedics", Lines: []string{"A journey"}}, []string{"MicroMedics", "A journey", "start"}},
		{story.Step{Kind: story.Dialog, Title: "Dr. Cell", Lines: []string{"Welcome aboard"}}, []string{"Dr. Cell", "Welcome aboard", "Continue"}},
		{story.Step{Kind: story.Debrief, Title: "Mission Debrief", Lines: []string{"Done"}}, []string{"Mission Debrief", "Done", "What you learned:", "- The heart has four chambers."}},
	}
	for _, tt := range tests {
		t.Run(string(tt.step.Kind), func(t *testing.T) {
			p, r, _ := newPanel()
			p.SetFacts([]string{"The heart has four chambers."})
			p.Show(tt.step)
			p.Draw(rendertest.NewImage(960, 540))
			for _, w := range tt.want {
				assert.True(t, r.HasText(w), "missing %q in %v", w, r.Texts())
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	r := &rendertest.Renderer{}

	lines := WrapText(r, "one two three four five", 70, 1)
	for _, l := range lines {
		w, _ := r.MeasureText(l, 1)
		assert.LessOrEqual(t, w, 70)
	}
	assert.Equal(t, []string{"one two", "three four", "five"}, lines)

	assert.Equal(t, []string{"extraordinarily"}, WrapText(r, "extraordinarily", 20, 1), "a long word keeps its own line")
	assert.Empty(t, WrapText(r, "   ", 70, 1))
}
