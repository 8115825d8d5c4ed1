// Package rendertest provides recording implementations of the render
// interfaces for headless tests.
package rendertest

import (
	"image"
	"image/color"
	"strings"

	"chosenoffset.com/micromedics/internal/render"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string // "rect", "stroke-rect", "circle", "stroke-circle", "text", "image", "fill"
	X, Y  float32
	W, H  float32
	Text  string
	Color color.Color
}

// Renderer records every draw call. Text is measured as 7px per rune and
// 14px high at scale 1.
type Renderer struct {
	Ops []Op
}

var _ render.Renderer = (*Renderer)(nil)

func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{W: width, H: height, rec: r}
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke-rect", X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: x, Y: y, W: radius * 2, H: radius * 2, Color: clr})
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke-circle", X: x, Y: y, W: radius * 2, H: radius * 2, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: float32(x), Y: float32(y), Text: text, Color: clr})
}

func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len([]rune(text))) * 7 * scale), int(14 * scale)
}

// Texts returns every drawn string in order.
func (r *Renderer) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any drawn string contains substr.
func (r *Renderer) HasText(substr string) bool {
	for _, t := range r.Texts() {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// Count returns how many ops of a kind were recorded.
func (r *Renderer) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets recorded ops.
func (r *Renderer) Reset() { r.Ops = nil }

// Image is a sized placeholder surface.
type Image struct {
	W, H     int
	Disposed bool
	rec      *Renderer
}

var _ render.Image = (*Image)(nil)

// NewImage returns a screen-sized image not tied to a renderer.
func NewImage(width, height int) *Image { return &Image{W: width, H: height} }

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (int, int) { return i.W, i.H }
func (i *Image) Clear() {}
func (i *Image) Dispose() { i.Disposed = true }
func (i *Image) Fill(clr color.Color) { i.record(Op{Kind: "fill", Color: clr}) }
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := Op{Kind: "image"}
	if opts != nil {
		op.Color = opts.Tint
	}
	i.record(op)
}

func (i *Image) record(op Op) {
	if i.rec != nil {
		i.rec.Ops = append(i.rec.Ops, op)
	}
}

// Input is a scripted InputManager. Set fields before each Update; "just
// pressed" is true only for keys listed in Just.
type Input struct {
	Held       map[render.Key]bool
	Just       map[render.Key]bool
	CursorX    int
	CursorY    int
	MouseDown  bool
	MouseClick bool
}

var _ render.InputManager = (*Input)(nil)

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{Held: map[render.Key]bool{}, Just: map[render.Key]bool{}}
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Held[key] || in.Just[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }
func (in *Input) GetCursorPosition() (int, int) { return in.CursorX, in.CursorY }

func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && (in.MouseDown || in.MouseClick)
}

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.MouseClick
}

// Press marks key as just pressed for the next frame.
func (in *Input) Press(key render.Key) { in.Just[key] = true }

// Click places the cursor and clicks once.
func (in *Input) Click(x, y int) {
	in.CursorX, in.CursorY = x, y
	in.MouseClick = true
}

// EndFrame clears the one-frame edges.
func (in *Input) EndFrame() {
	in.Just = map[render.Key]bool{}
	in.MouseClick = false
}
