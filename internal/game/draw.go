package game

import (
	"image/color"

	"chosenoffset.com/micromedics/internal/entity"
	"chosenoffset.com/micromedics/internal/render"
	"chosenoffset.com/micromedics/internal/story"
)

var (
	backgroundColor = color.RGBA{70, 12, 24, 255}
	platformColor   = color.RGBA{180, 70, 90, 255}
	platformEdge    = color.RGBA{230, 120, 140, 255}
	energyColor     = color.RGBA{110, 210, 255, 255}
	bonusColor      = color.RGBA{255, 215, 80, 255}
	germColor       = color.RGBA{90, 200, 80, 255}
	weakGermColor   = color.RGBA{170, 190, 255, 255}
	playerColor     = color.RGBA{245, 245, 250, 255}
	playerCross     = color.RGBA{220, 40, 50, 255}
)

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.Step().Kind {
	case story.Level:
		if m.Scene != nil {
			m.drawScene(screen)
			m.HUD.Draw(screen)
		}
	case story.Hub:
		m.HubView.Draw(screen, m.Step().Title, m.Hub.Stats(), m.Hub.Entries())
	default:
		m.Panel.Draw(screen)
	}
	m.drawNotices(screen)
}

// drawScene renders the world to the offscreen texture and composites it,
// tinted while power mode is active.
func (m *Manager) drawScene(screen render.Image) {
	s := m.Scene
	w, h := screen.Size()
	if s.SceneTexture == nil || needsResize(s.SceneTexture, w, h) {
		if s.SceneTexture != nil {
			s.SceneTexture.Dispose()
		}
		s.SceneTexture = m.Renderer.NewImage(w, h)
	}

	s.SceneTexture.Clear()
	s.SceneTexture.Fill(backgroundColor)
	m.drawPlatforms(s.SceneTexture)
	m.drawPickups(s.SceneTexture)
	m.drawEnemies(s.SceneTexture)
	m.drawPlayer(s.SceneTexture)

	opts := &render.DrawImageOptions{}
	if f := s.Level.Power.Fraction(); f > 0 {
		opts.Tint = powerTint(f)
	}
	screen.DrawImage(s.SceneTexture, opts)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

// powerTint fades from a violet wash back to no tint as power runs out.
func powerTint(fraction float64) color.RGBA {
	lerp := func(to uint8) uint8 {
		return uint8(255 - (255-float64(to))*fraction)
	}
	return color.RGBA{lerp(210), lerp(160), 255, 255}
}

func (m *Manager) toScreen(x, y float64) (float32, float32) {
	return float32(x - m.Scene.Camera.X), float32(y - m.Scene.Camera.Y)
}

func (m *Manager) drawPlatforms(dst render.Image) {
	for _, r := range m.Scene.Level.Solids() {
		x, y := m.toScreen(r.X, r.Y)
		m.Renderer.FillRect(dst, x, y, float32(r.W), float32(r.H), platformColor)
		m.Renderer.FillRect(dst, x, y, float32(r.W), 3, platformEdge)
	}
}

func (m *Manager) drawPickups(dst render.Image) {
	for _, p := range m.Scene.Level.Pickups {
		if p.Consumed {
			continue
		}
		x, y := m.toScreen(p.Pos.X, p.Pos.Y)
		clr := energyColor
		if p.Kind == entity.PickupBonus {
			clr = bonusColor
			m.Renderer.StrokeCircle(dst, x, y, float32(p.Size)/2+4, 2, bonusColor)
		}
		m.Renderer.FillCircle(dst, x, y, float32(p.Size)/2, clr)
	}
}

func (m *Manager) drawEnemies(dst render.Image) {
	for _, e := range m.Scene.Level.Enemies {
		c := e.Body.Center()
		x, y := m.toScreen(c.X, c.Y)
		clr := germColor
		if e.Vulnerable {
			clr = weakGermColor
		}
		r := float32(e.Body.Size.X) / 2
		m.Renderer.FillCircle(dst, x, y, r, clr)
		m.Renderer.StrokeCircle(dst, x, y, r+3, 2, clr)
	}
}

func (m *Manager) drawPlayer(dst render.Image) {
	b := m.Scene.Level.Player
	x, y := m.toScreen(b.Pos.X, b.Pos.Y)
	w, h := float32(b.Size.X), float32(b.Size.Y)
	m.Renderer.FillRect(dst, x, y+h/3, w, h*2/3, playerColor)
	m.Renderer.FillCircle(dst, x+w/2, y+h/4, w/2.5, playerColor)
	// Medic cross
	m.Renderer.FillRect(dst, x+w/2-2, y+h/2-6, 4, 12, playerCross)
	m.Renderer.FillRect(dst, x+w/2-6, y+h/2-2, 12, 4, playerCross)
}

func (m *Manager) drawNotices(screen render.Image) {
	y := m.ScreenHeight - 120
	for _, n := range m.Notices.Active() {
		alpha := uint8(255 * n.Alpha())
		w, _ := m.Renderer.MeasureText(n.Text, 1.2)
		x := (m.ScreenWidth - w) / 2
		m.Renderer.FillRect(screen, float32(x-10), float32(y-4), float32(w+20), 26, color.NRGBA{0, 0, 0, alpha / 2})
		m.Renderer.DrawText(screen, n.Text, x, y, color.NRGBA{255, 255, 255, alpha}, 1.2)
		y -= 30
	}
}
