// Package narrative draws the story beats between levels (title card,
// dialog, cinematic and debrief) and waits for the player to continue.
package narrative

import (
	"image/color"

	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/story"
)

// Panel shows one story step at a time
type Panel struct {
	Width, Height int

	renderer render.Renderer
	input    render.InputManager

	step     story.Step
	revealed int // Cinematic lines shown so far
	facts    []string

	lastMouseClick bool

	// Visual settings
	bgColor    color.RGBA
	textColor  color.RGBA
	titleColor color.RGBA
	dimColor   color.RGBA
	lineHeight int
	padding    int
}

// NewPanel creates a new narrative panel covering the screen
func NewPanel(r render.Renderer, input render.InputManager, width, height int) *Panel {
	return &Panel{
		Width:      width,
		Height:     height,
		renderer:   r,
		input:      input,
		bgColor:    color.RGBA{16, 12, 28, 255},
		textColor:  color.RGBA{220, 220, 220, 255},
		titleColor: color.RGBA{255, 120, 140, 255},
		dimColor:   color.RGBA{140, 140, 150, 255},
		lineHeight: 24,
		padding:    40,
	}
}

// Resize updates the panel dimensions when the window is resized
func (p *Panel) Resize(width, height int) {
	p.Width = width
	p.Height = height
}

// Show switches the panel to a new step.
func (p *Panel) Show(step story.Step) {
	p.step = step
	p.revealed = 1
	// A click still held from the previous screen must not skip this one
	p.lastMouseClick = p.input.IsMouseButtonPressed(render.MouseButtonLeft)
}

// SetFacts sets the learned facts listed on the debrief.
func (p *Panel) SetFacts(facts []string) {
	p.facts = facts
}

// Step returns the step being shown.
func (p *Panel) Step() story.Step { return p.step }

// Update reads Continue (Space, Enter or click) and returns true when the
// player is done with the step. Cinematics reveal one line per Continue.
func (p *Panel) Update() bool {
	mousePressed := p.input.IsMouseButtonPressed(render.MouseButtonLeft)
	clicked := mousePressed && !p.lastMouseClick
	p.lastMouseClick = mousePressed

	pressed := clicked ||
		p.input.IsKeyJustPressed(render.KeySpace) ||
		p.input.IsKeyJustPressed(render.KeyEnter)
	if !pressed {
		return false
	}
	if p.step.Kind == story.Cinematic && p.revealed < len(p.step.Lines) {
		p.revealed++
		return false
	}
	return true
}

// Draw renders the current step
func (p *Panel) Draw(screen render.Image) {
	screen.Fill(p.bgColor)

	switch p.step.Kind {
	case story.Boot:
		p.drawCentered(screen, "Loading...", p.Height/2, p.dimColor, 1.4)
	case story.Title:
		p.drawTitle(screen)
	case story.Dialog:
		p.drawDialog(screen)
	case story.Cinematic:
		p.drawCinematic(screen)
	case story.Debrief:
		p.drawDebrief(screen)
	default:
		p.drawCentered(screen, p.step.Title, p.Height/2, p.textColor, 1.6)
	}
}

func (p *Panel) drawTitle(screen render.Image) {
	p.drawCentered(screen, p.step.Title, p.Height/3, p.titleColor, 4.0)
	y := p.Height/3 + 80
	for _, line := range p.step.Lines {
		p.drawCentered(screen, line, y, p.textColor, 1.4)
		y += p.lineHeight + 8
	}
	p.drawPrompt(screen, "Press SPACE or click to start")
}

func (p *Panel) drawDialog(screen render.Image) {
	boxH := p.Height / 3
	boxY := p.Height - boxH - p.padding
	boxW := p.Width - p.padding*2
	p.renderer.FillRect(screen, float32(p.padding), float32(boxY), float32(boxW), float32(boxH), color.RGBA{30, 30, 50, 235})
	p.renderer.StrokeRect(screen, float32(p.padding), float32(boxY), float32(boxW), float32(boxH), 2, color.RGBA{90, 90, 130, 255})

	// Speaker portrait
	p.renderer.FillCircle(screen, float32(p.padding+50), float32(boxY-50), 36, color.RGBA{120, 200, 255, 255})

	x := p.padding * 2
	y := boxY + 14
	if p.step.Title != "" {
		p.renderer.DrawText(screen, p.step.Title, x, y, p.titleColor, 1.3)
		y += p.lineHeight + 6
	}
	for _, line := range p.wrapLines(p.step.Lines, boxW-p.padding*2, 1.1) {
		p.renderer.DrawText(screen, line, x, y, p.textColor, 1.1)
		y += p.lineHeight
	}
	p.drawPrompt(screen, "Continue (SPACE)")
}

func (p *Panel) drawCinematic(screen render.Image) {
	bar := float32(p.Height) / 8
	black := color.RGBA{0, 0, 0, 255}
	p.renderer.FillRect(screen, 0, 0, float32(p.Width), bar, black)
	p.renderer.FillRect(screen, 0, float32(p.Height)-bar, float32(p.Width), bar, black)

	y := int(bar) + p.padding
	p.drawCentered(screen, p.step.Title, y, p.titleColor, 2.0)
	y += p.lineHeight * 3

	shown := p.step.Lines
	if p.revealed < len(shown) {
		shown = shown[:p.revealed]
	}
	for _, line := range p.wrapLines(shown, p.Width-p.padding*4, 1.3) {
		p.drawCentered(screen, line, y, p.textColor, 1.3)
		y += p.lineHeight + 6
	}
	p.drawPrompt(screen, "Continue (SPACE)")
}

func (p *Panel) drawDebrief(screen render.Image) {
	y := p.padding
	p.renderer.DrawText(screen, p.step.Title, p.padding, y, p.titleColor, 2.4)
	y += p.lineHeight * 3

	for _, line := range p.wrapLines(p.step.Lines, p.Width-p.padding*2, 1.2) {
		p.renderer.DrawText(screen, line, p.padding, y, p.textColor, 1.2)
		y += p.lineHeight
	}

	if len(p.facts) > 0 {
		y += p.lineHeight
		p.renderer.DrawText(screen, "What you learned:", p.padding, y, color.RGBA{255, 220, 80, 255}, 1.2)
		y += p.lineHeight + 4
		for _, fact := range p.facts {
			for i, line := range WrapText(p.renderer, "- "+fact, p.Width-p.padding*3, 1.0) {
				indent := 0
				if i > 0 {
					indent = 14
				}
				p.renderer.DrawText(screen, line, p.padding+indent, y, p.dimColor, 1.0)
				y += p.lineHeight - 4
			}
		}
	}
	p.drawPrompt(screen, "Press SPACE to return to the title")
}

func (p *Panel) drawPrompt(screen render.Image, text string) {
	p.drawCentered(screen, text, p.Height-p.padding+8, p.dimColor, 1.0)
}

func (p *Panel) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	if text == "" {
		return
	}
	w, _ := p.renderer.MeasureText(text, scale)
	p.renderer.DrawText(screen, text, (p.Width-w)/2, y, clr, scale)
}

func (p *Panel) wrapLines(lines []string, maxWidth int, scale float64) []string {
	var out []string
	for _, l := range lines {
		out = append(out, WrapText(p.renderer, l, maxWidth, scale)...)
	}
	return out
}
