// Package viewer renders section profiles on a fyne canvas.
package viewer

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/minevis/pkg/profile"
)

var profileColors = []color.Color{
	color.RGBA{R: 102, G: 197, B: 255, A: 255},
	color.RGBA{R: 255, G: 180, B: 80, A: 255},
	color.RGBA{R: 140, G: 230, B: 140, A: 255},
	color.RGBA{R: 235, G: 120, B: 180, A: 255},
}

// ProfileRenderer draws elevation profiles with adaptive grid lines.
// Dragging pans, scrolling zooms, tapping probes the nearest sample.
type ProfileRenderer struct {
	widget.BaseWidget

	profiles []profile.Profile
	view     *profile.View
	cfg      profile.Config

	gridLines  []*canvas.Line
	gridLabels []*canvas.Text
	polylines  []*canvas.Line
	probe      *canvas.Circle

	width  float64
	height float64

	dragStart *fyne.Position
	onProbe   func(pt profile.Point, ok bool)
}

// NewProfileRenderer creates a renderer over the given profiles.
func NewProfileRenderer(profiles []profile.Profile, cfg profile.Config) *ProfileRenderer {
	r := &ProfileRenderer{
		profiles: profiles,
		cfg:      cfg,
		view:     profile.NewView(profiles, 800, 600, cfg),
		width:    800,
		height:   600,
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetOnProbe sets the callback invoked when the user taps the plot.
func (r *ProfileRenderer) SetOnProbe(callback func(pt profile.Point, ok bool)) {
	r.onProbe = callback
}

// SetProfiles replaces the rendered profiles, rebuilding the view.
func (r *ProfileRenderer) SetProfiles(profiles []profile.Profile) {
	r.profiles = profiles
	r.view = profile.NewView(profiles, r.width, r.height, r.cfg)
	r.rebuild()
}

// View exposes the data-to-screen mapping for callers that need it.
func (r *ProfileRenderer) View() *profile.View {
	return r.view
}

// ZoomIn steps the zoom level up and redraws.
func (r *ProfileRenderer) ZoomIn() {
	r.view.ZoomIn()
	r.rebuild()
}

// ZoomOut steps the zoom level down and redraws.
func (r *ProfileRenderer) ZoomOut() {
	r.view.ZoomOut()
	r.rebuild()
}

// ResetView restores zoom 1 and a zero pan offset.
func (r *ProfileRenderer) ResetView() {
	r.view.Reset()
	r.rebuild()
}

// CreateRenderer creates the fyne renderer for the widget.
func (r *ProfileRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &profileWidgetRenderer{renderer: r}
}

// rebuild regenerates the canvas objects from the current view.
func (r *ProfileRenderer) rebuild() {
	r.gridLines = r.gridLines[:0]
	r.gridLabels = r.gridLabels[:0]
	r.polylines = r.polylines[:0]

	minorColor := color.RGBA{R: 55, G: 62, B: 72, A: 255}
	majorColor := color.RGBA{R: 95, G: 105, B: 120, A: 255}
	labelColor := color.RGBA{R: 170, G: 178, B: 190, A: 255}

	bounds := r.view.Bounds()
	lines := r.view.GridLines()

	for _, gl := range lines.X {
		x, yTop := r.view.ToScreen(gl.Value, bounds.MaxZ)
		_, yBot := r.view.ToScreen(gl.Value, bounds.MinZ)

		line := canvas.NewLine(minorColor)
		if gl.Major {
			line.StrokeColor = majorColor
			line.StrokeWidth = 2

			label := canvas.NewText(fmt.Sprintf("%.0f", gl.Value), labelColor)
			label.TextSize = 11
			label.Move(fyne.NewPos(float32(x)+3, float32(yBot)-16))
			r.gridLabels = append(r.gridLabels, label)
		} else {
			line.StrokeWidth = 1
		}
		line.Position1 = fyne.NewPos(float32(x), float32(yTop))
		line.Position2 = fyne.NewPos(float32(x), float32(yBot))
		r.gridLines = append(r.gridLines, line)
	}

	for _, gl := range lines.Y {
		xLeft, y := r.view.ToScreen(bounds.MinDistance, gl.Value)
		xRight, _ := r.view.ToScreen(bounds.MaxDistance, gl.Value)

		line := canvas.NewLine(minorColor)
		if gl.Major {
			line.StrokeColor = majorColor
			line.StrokeWidth = 2

			label := canvas.NewText(fmt.Sprintf("%.0f", gl.Value), labelColor)
			label.TextSize = 11
			label.Move(fyne.NewPos(float32(xLeft)+3, float32(y)-14))
			r.gridLabels = append(r.gridLabels, label)
		} else {
			line.StrokeWidth = 1
		}
		line.Position1 = fyne.NewPos(float32(xLeft), float32(y))
		line.Position2 = fyne.NewPos(float32(xRight), float32(y))
		r.gridLines = append(r.gridLines, line)
	}

	for pi, p := range r.profiles {
		strokeColor := profileColors[pi%len(profileColors)]
		for i := 0; i+1 < len(p.Points); i++ {
			x1, y1 := r.view.ToScreen(p.Points[i].Distance, p.Points[i].Z)
			x2, y2 := r.view.ToScreen(p.Points[i+1].Distance, p.Points[i+1].Z)

			line := canvas.NewLine(strokeColor)
			line.StrokeWidth = 2
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			r.polylines = append(r.polylines, line)
		}
	}

	r.Refresh()
}

// Dragged pans the view.
func (r *ProfileRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		r.view.PanBy(float64(event.Position.X-r.dragStart.X), float64(event.Position.Y-r.dragStart.Y))
		r.rebuild()
	}
	r.dragStart = &event.Position
}

// DragEnd finishes a pan gesture.
func (r *ProfileRenderer) DragEnd() {
	r.dragStart = nil
}

// Scrolled zooms the view.
func (r *ProfileRenderer) Scrolled(event *fyne.ScrollEvent) {
	if event.Scrolled.DY > 0 {
		r.view.ZoomIn()
	} else if event.Scrolled.DY < 0 {
		r.view.ZoomOut()
	}
	r.rebuild()
}

// Tapped probes the nearest profile point under the cursor.
func (r *ProfileRenderer) Tapped(event *fyne.PointEvent) {
	pt, ok := r.view.NearestPoint(r.profiles, float64(event.Position.X), float64(event.Position.Y))

	if ok {
		if r.probe == nil {
			r.probe = canvas.NewCircle(color.RGBA{R: 255, G: 220, B: 80, A: 255})
			r.probe.StrokeColor = color.White
			r.probe.StrokeWidth = 1
		}
		x, y := r.view.ToScreen(pt.Distance, pt.Z)
		size := float32(10)
		r.probe.Resize(fyne.NewSize(size, size))
		r.probe.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	} else {
		r.probe = nil
	}
	r.Refresh()

	if r.onProbe != nil {
		r.onProbe(pt, ok)
	}
}

// profileWidgetRenderer implements fyne.WidgetRenderer
type profileWidgetRenderer struct {
	renderer *ProfileRenderer
	objects  []fyne.CanvasObject
}

func (w *profileWidgetRenderer) Layout(size fyne.Size) {
	w.renderer.width = float64(size.Width)
	w.renderer.height = float64(size.Height)
	w.renderer.view.Resize(w.renderer.width, w.renderer.height)
	w.renderer.rebuild()
}

func (w *profileWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (w *profileWidgetRenderer) Refresh() {
	w.objects = w.objects[:0]
	for _, line := range w.renderer.gridLines {
		w.objects = append(w.objects, line)
	}
	for _, label := range w.renderer.gridLabels {
		w.objects = append(w.objects, label)
	}
	for _, line := range w.renderer.polylines {
		w.objects = append(w.objects, line)
	}
	if w.renderer.probe != nil {
		w.objects = append(w.objects, w.renderer.probe)
	}
	canvas.Refresh(w.renderer)
}

func (w *profileWidgetRenderer) Objects() []fyne.CanvasObject {
	return w.objects
}

func (w *profileWidgetRenderer) Destroy() {}
