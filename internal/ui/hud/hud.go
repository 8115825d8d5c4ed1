// Package hud draws the in-level heads-up display from the session snapshot.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/session"
	"chosenoffset.com/micromedics/internal/simulation"
)

// Config defines what to display in the HUD
type Config = simulation.HUDConfig

// DefaultConfig returns the default HUD configuration
func DefaultConfig() *Config {
	c := simulation.DefaultHUD()
	return &c
}

// HUD manages the heads-up display
type HUD struct {
	config       *Config
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	snap session.Snapshot
	seen bool

	panelWidth int
}

// New creates a new HUD with the given configuration
func New(config *Config, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   220,
	}
}

// SetSnapshot stores the latest snapshot. It matches session.Listener.
func (h *HUD) SetSnapshot(s session.Snapshot) {
	h.snap = s
	h.seen = true
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image) {
	if !h.seen {
		return
	}
	x, y := h.calculatePosition()
	h.drawPanel(screen, x, y)

	currentY := y + 8
	if h.snap.Level != "" {
		h.drawText(screen, h.snap.Level, x+8, currentY, color.RGBA{255, 255, 200, 255})
		currentY += 18
	}

	currentY = h.drawHealthBar(screen, x+8, currentY)
	currentY += 4

	energy := fmt.Sprintf("Energy: %d/%d", h.snap.Energy, h.snap.EnergyGoal)
	energyColor := color.RGBA{120, 200, 255, 255}
	if h.snap.EnergyGoal > 0 && h.snap.Energy >= h.snap.EnergyGoal {
		energyColor = color.RGBA{100, 255, 100, 255}
	}
	h.drawText(screen, energy, x+8, currentY, energyColor)
	currentY += 18

	h.drawText(screen, fmt.Sprintf("Stars: %d", h.snap.StarCount), x+8, currentY, color.RGBA{255, 220, 80, 255})
	currentY += 18

	if h.config.ShowScore {
		h.drawText(screen, fmt.Sprintf("Score: %d", h.snap.Score), x+8, currentY, color.RGBA{200, 200, 200, 255})
		currentY += 18
	}

	if h.snap.PowerRemaining > 0 {
		currentY = h.drawPowerBar(screen, x+8, currentY)
	}

	if h.config.ShowSession {
		h.drawDivider(screen, x+4, currentY, h.panelWidth-8)
		currentY += 6
		line := fmt.Sprintf("Time %s  Facts %d", clock(h.snap.ElapsedSeconds), len(h.snap.LearnedFacts))
		h.drawText(screen, line, x+8, currentY, color.RGBA{150, 150, 150, 255})
	}
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	padding := 10
	if h.config.Position == "top-right" {
		return h.screenWidth - h.panelWidth - padding, padding
	}
	return padding, padding
}

// calculatePanelHeight calculates the height needed for all HUD elements
func (h *HUD) calculatePanelHeight() int {
	height := 16 + 16 + 36 // Padding, health bar, energy and stars
	if h.snap.Level != "" {
		height += 18
	}
	if h.config.ShowScore {
		height += 18
	}
	if h.snap.PowerRemaining > 0 {
		height += 16
	}
	if h.config.ShowSession {
		height += 24
	}
	return height
}

// drawPanel draws the semi-transparent background panel
func (h *HUD) drawPanel(screen render.Image, x, y int) {
	alpha := uint8(h.config.Opacity * 255)
	height := h.calculatePanelHeight()
	h.renderer.FillRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), color.NRGBA{20, 20, 30, alpha})
	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), 1, color.NRGBA{60, 60, 80, alpha})
}

// HealthColor picks the bar color for a health fraction.
func HealthColor(pct float64) color.RGBA {
	switch {
	case pct > 0.6:
		return color.RGBA{50, 180, 50, 255} // Green
	case pct > 0.3:
		return color.RGBA{200, 180, 50, 255} // Yellow
	default:
		return color.RGBA{200, 50, 50, 255} // Red
	}
}

// drawHealthBar draws the player's health bar
func (h *HUD) drawHealthBar(screen render.Image, x, y int) int {
	barWidth := h.panelWidth - 24
	barHeight := 12

	h.renderer.FillRect(screen, float32(x), float32(y), float32(barWidth), float32(barHeight), color.RGBA{60, 20, 20, 255})

	if h.snap.MaxHealth > 0 {
		healthPct := float64(h.snap.Health) / float64(h.snap.MaxHealth)
		if healthPct > 0 {
			fillWidth := float64(barWidth-2) * healthPct
			if fillWidth < 1 {
				fillWidth = 1
			}
			h.renderer.FillRect(screen, float32(x+1), float32(y+1), float32(fillWidth), float32(barHeight-2), HealthColor(healthPct))
		}
	}

	hpText := fmt.Sprintf("%d/%d", h.snap.Health, h.snap.MaxHealth)
	w, _ := h.renderer.MeasureText(hpText, 0.8)
	h.renderer.DrawText(screen, hpText, x+barWidth/2-w/2, y-1, color.RGBA{255, 255, 255, 255}, 0.8)

	return y + barHeight + 4
}

// drawPowerBar draws the shrinking power-mode bar
func (h *HUD) drawPowerBar(screen render.Image, x, y int) int {
	barWidth := float32(h.panelWidth - 24)
	h.renderer.FillRect(screen, float32(x), float32(y), barWidth, 8, color.RGBA{40, 30, 70, 255})
	h.renderer.FillRect(screen, float32(x), float32(y), barWidth*float32(h.snap.PowerFraction), 8, color.RGBA{190, 120, 255, 255})
	return y + 16
}

// drawDivider draws a horizontal line
func (h *HUD) drawDivider(screen render.Image, x, y, width int) {
	h.renderer.FillRect(screen, float32(x), float32(y), float32(width), 1, color.RGBA{80, 80, 100, 200})
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int, clr color.RGBA) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, 180}, 1.0)
	h.renderer.DrawText(screen, text, x, y, clr, 1.0)
}

func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
