package hud

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/micromedics/internal/render/rendertest"
	"chosenoffset.com/micromedics/internal/session"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		pct  float64
		want color.RGBA
	}{
		{1.0, color.RGBA{50, 180, 50, 255}},
		{0.61, color.RGBA{50, 180, 50, 255}},
		{0.6, color.RGBA{200, 180, 50, 255}},
		{0.31, color.RGBA{200, 180, 50, 255}},
		{0.3, color.RGBA{200, 50, 50, 255}},
		{0, color.RGBA{200, 50, 50, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthColor(tt.pct), "pct %.2f", tt.pct)
	}
}

func TestDrawNothingBeforeFirstSnapshot(t *testing.T) {
	r := &rendertest.Renderer{}
	h := New(nil, r, 960, 540)
	h.Draw(rendertest.NewImage(960, 540))
	assert.Empty(t, r.Ops)
}

func TestDrawSnapshot(t *testing.T) {
	r := &rendertest.Renderer{}
	h := New(nil, r, 960, 540)
	h.SetSnapshot(session.Snapshot{
		Level:          "Circulatory System",
		Health:         40,
		MaxHealth:      100,
		Energy:         3,
		EnergyGoal:     10,
		StarCount:      2,
		Score:          55,
		ElapsedSeconds: 75,
		LearnedFacts:   []string{"a", "b", "c", "d"},
	})
	h.Draw(rendertest.NewImage(960, 540))

	assert.True(t, r.HasText("Circulatory System"))
	assert.True(t, r.HasText("40/100"))
	assert.True(t, r.HasText("Energy: 3/10"))
	assert.True(t, r.HasText("Stars: 2"))
	assert.True(t, r.HasText("Score: 55"))
	assert.True(t, r.HasText("Time 1:15  Facts 4"))

	var fills []color.Color
	for _, op := range r.Ops {
		if op.Kind == "rect" {
			fills = append(fills, op.Color)
		}
	}
	assert.Contains(t, fills, color.Color(HealthColor(0.4)))
}

func TestDrawPowerBarOnlyWhenEmpowered(t *testing.T) {
	r := &rendertest.Renderer{}
	h := New(&Config{Position: "top-right", Opacity: 1}, r, 960, 540)

	h.SetSnapshot(session.Snapshot{MaxHealth: 100, Health: 100})
	h.Draw(rendertest.NewImage(960, 540))
	without := r.Count("rect")

	r.Reset()
	h.SetSnapshot(session.Snapshot{MaxHealth: 100, Health: 100, PowerRemaining: 3 * time.Second, PowerFraction: 0.5})
	h.Draw(rendertest.NewImage(960, 540))
	assert.Equal(t, without+2, r.Count("rect"))

	for _, op := range r.Ops {
		if op.Kind == "stroke-rect" {
			assert.Equal(t, float32(960-220-10), op.X, "panel is anchored top-right")
		}
	}
}

func TestPanelOpacity(t *testing.T) {
	r := &rendertest.Renderer{}
	h := New(&Config{Opacity: 0.2}, r, 960, 540)
	h.SetSnapshot(session.Snapshot{MaxHealth: 100, Health: 100})
	h.Draw(rendertest.NewImage(960, 540))

	require.NotEmpty(t, r.Ops)
	panel := r.Ops[0]
	require.Equal(t, "rect", panel.Kind)
	assert.Equal(t, color.NRGBA{20, 20, 30, 51}, panel.Color)

	red, _, _, a := panel.Color.RGBA()
	assert.LessOrEqual(t, red, a, "a faint panel stays dark")
}
