// Package hubview draws the body map and turns pointer clicks into hub actions.
package hubview

import (
	"fmt"
	"image/color"

	"chosenoffset.com/micromedics/internal/hub"
	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/ui/narrative"
)

// ActionKind is what the player asked the hub to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPlay
	ActionRepair
	ActionProceed
)

// Action is a click resolved to a hub operation.
type Action struct {
	Kind   ActionKind
	System string
}

// Card is the on-screen layout of one body system.
type Card struct {
	System string
	Box    Rect
	Play   Rect
	Repair Rect
}

// Rect is an integer screen rectangle; edges count as inside.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (px, py) is inside r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

const (
	cardWidth  = 260
	cardHeight = 210
	cardGap    = 30
	cardTop    = 120
	buttonW    = 100
	buttonH    = 32
)

// View is the body-map screen.
type View struct {
	renderer       render.Renderer
	input          render.InputManager
	screenWidth    int
	screenHeight   int
	lastMouseClick bool
}

// New creates a body-map view.
func New(r render.Renderer, input render.InputManager, width, height int) *View {
	return &View{renderer: r, input: input, screenWidth: width, screenHeight: height}
}

// SetSize updates the screen dimensions.
func (v *View) SetSize(width, height int) {
	v.screenWidth = width
	v.screenHeight = height
}

// Layout places one card per entry, centered in a row.
func (v *View) Layout(entries []hub.Entry) []Card {
	n := len(entries)
	total := n*cardWidth + (n-1)*cardGap
	x := (v.screenWidth - total) / 2
	if x < 10 {
		x = 10
	}
	cards := make([]Card, 0, n)
	for _, e := range entries {
		box := Rect{X: x, Y: cardTop, W: cardWidth, H: cardHeight}
		by := box.Y + box.H - buttonH - 14
		cards = append(cards, Card{
			System: e.System.ID,
			Box:    box,
			Play:   Rect{X: box.X + 16, Y: by, W: buttonW, H: buttonH},
			Repair: Rect{X: box.X + box.W - buttonW - 16, Y: by, W: buttonW, H: buttonH},
		})
		x += cardWidth + cardGap
	}
	return cards
}

// ProceedButton returns the layout of the Proceed button.
func (v *View) ProceedButton() Rect {
	return Rect{X: v.screenWidth/2 - 110, Y: v.screenHeight - 90, W: 220, H: 40}
}

// Update reads the pointer and returns the action clicked this frame, if any.
// Clicks on disabled buttons are still reported so the hub can explain why.
func (v *View) Update(entries []hub.Entry) Action {
	mousePressed := v.input.IsMouseButtonPressed(render.MouseButtonLeft)
	// Detect mouse click (button pressed this frame but not last frame)
	mouseClicked := mousePressed && !v.lastMouseClick
	v.lastMouseClick = mousePressed

	if v.input.IsKeyJustPressed(render.KeyEnter) {
		return Action{Kind: ActionProceed}
	}
	if !mouseClicked {
		return Action{}
	}

	mx, my := v.input.GetCursorPosition()
	for _, c := range v.Layout(entries) {
		switch {
		case c.Play.Contains(mx, my):
			return Action{Kind: ActionPlay, System: c.System}
		case c.Repair.Contains(mx, my):
			return Action{Kind: ActionRepair, System: c.System}
		}
	}
	if v.ProceedButton().Contains(mx, my) {
		return Action{Kind: ActionProceed}
	}
	return Action{}
}

var (
	textColor     = color.RGBA{255, 255, 255, 255}
	dimColor      = color.RGBA{150, 150, 150, 255}
	lockedColor   = color.RGBA{90, 90, 100, 255}
	repairColor   = color.RGBA{230, 150, 60, 255}
	repairedColor = color.RGBA{90, 200, 120, 255}
)

// Draw renders the map: title, stats line, one card per system and the Proceed button.
func (v *View) Draw(screen render.Image, title string, stats hub.Stats, entries []hub.Entry) {
	screen.Fill(color.RGBA{24, 14, 28, 255})

	if title == "" {
		title = "Body Map"
	}
	v.renderer.DrawText(screen, title, 40, 30, textColor, 2.2)
	line := fmt.Sprintf("Stars: %d   Unlocked: %d   Facts: %d   Time: %d:%02d",
		stats.Stars, stats.Unlocked, stats.Facts,
		int(stats.Elapsed.Minutes()), int(stats.Elapsed.Seconds())%60)
	v.renderer.DrawText(screen, line, 40, 78, color.RGBA{255, 220, 80, 255}, 1.1)

	cards := v.Layout(entries)
	for i, e := range entries {
		v.drawCard(screen, cards[i], e)
	}

	allRepaired := len(entries) > 0
	for _, e := range entries {
		if e.Status != hub.Repaired {
			allRepaired = false
		}
	}
	proceedColor := lockedColor
	if allRepaired {
		proceedColor = repairedColor
	}
	v.drawButton(screen, v.ProceedButton(), "Proceed", proceedColor)

	v.renderer.DrawText(screen, "Click Play to replay a system, Repair to spend a star.", 40, v.screenHeight-36, dimColor, 1.0)
}

func (v *View) drawCard(screen render.Image, c Card, e hub.Entry) {
	accent := statusColor(e.Status)
	b := c.Box
	v.renderer.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), color.RGBA{40, 30, 50, 230})
	v.renderer.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, accent)

	v.renderer.DrawText(screen, e.System.Name, b.X+16, b.Y+14, textColor, 1.5)
	v.renderer.DrawText(screen, e.Status.String(), b.X+16, b.Y+44, accent, 1.0)

	y := b.Y + 70
	for _, l := range narrative.WrapText(v.renderer, e.System.Blurb, b.W-32, 0.9) {
		v.renderer.DrawText(screen, l, b.X+16, y, dimColor, 0.9)
		y += 16
	}

	playColor := color.RGBA{70, 130, 220, 255}
	if e.Status == hub.Locked {
		playColor = lockedColor
	}
	v.drawButton(screen, c.Play, "Play", playColor)

	fixColor := lockedColor
	if e.Status == hub.NeedsRepair {
		fixColor = repairColor
	}
	v.drawButton(screen, c.Repair, "Repair", fixColor)
}

func (v *View) drawButton(screen render.Image, r Rect, label string, fill color.RGBA) {
	v.renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill)
	w, h := v.renderer.MeasureText(label, 1.1)
	v.renderer.DrawText(screen, label, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, textColor, 1.1)
}

func statusColor(s hub.Status) color.RGBA {
	switch s {
	case hub.Repaired:
		return repairedColor
	case hub.NeedsRepair:
		return repairColor
	default:
		return lockedColor
	}
}
