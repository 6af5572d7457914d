package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/camera"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/render"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/ui"
)

const (
	orbitSensitivity = 0.01
	zoomSensitivity  = 25.0
	clickSlop        = 4.0
)

// Game runs the whole simulation inline, one tick per ebiten update. No
// actors involved; this is the plain single-owner variant.
type Game struct {
	cfg *flock.Config
	flk *flock.Flock
	env *flock.Environment
	cam *camera.Camera

	panel *ui.Panel

	widgetPerception   *ui.Slider
	widgetSeparation   *ui.Slider
	widgetAlignment    *ui.Slider
	widgetCohesion     *ui.Slider
	widgetWindStrength *ui.Slider
	widgetWindX        *ui.Slider
	widgetWindY        *ui.Slider
	widgetWindZ        *ui.Slider
	widgetNumAgents    *ui.Slider
	widgetChaseMode    *ui.Checkbox
	widgetShowGrid     *ui.Checkbox
	widgetShowWind     *ui.Checkbox

	viewportW float64
	viewportH float64

	dragging  bool
	dragTotal float64
	lastMX    int
	lastMY    int
}

func newGame(cfg *flock.Config) *Game {
	g := &Game{
		cfg:       cfg,
		flk:       flock.New(cfg),
		env:       flock.NewEnvironment(cfg.Bounds),
		cam:       camera.New(),
		viewportW: cfg.ScreenWidth,
		viewportH: cfg.ScreenHeight,
	}

	panel := ui.NewPanel(10, 10, 240, 570)

	panel.AddSection("Flocking")
	g.widgetPerception = panel.AddSlider("Perception Radius", 10, 200, cfg.Factors.PerceptionRadius)
	g.widgetSeparation = panel.AddSlider("Separation", 0, 3, cfg.Factors.Separation)
	g.widgetAlignment = panel.AddSlider("Alignment", 0, 3, cfg.Factors.Alignment)
	g.widgetCohesion = panel.AddSlider("Cohesion", 0, 3, cfg.Factors.Cohesion)

	panel.AddSection("Wind")
	g.widgetWindStrength = panel.AddSlider("Wind Strength", 0, 2, cfg.Factors.WindStrength)
	g.widgetWindX = panel.AddSlider("Wind X", -1, 1, 1)
	g.widgetWindY = panel.AddSlider("Wind Y", -1, 1, 0)
	g.widgetWindZ = panel.AddSlider("Wind Z", -1, 1, 0)

	panel.AddSection("Population")
	g.widgetNumAgents = panel.AddSlider("Agents", 1, 500, float64(cfg.NumAgents))

	panel.AddSection("View")
	g.widgetChaseMode = panel.AddCheckbox("Chase Camera", false)
	g.widgetShowGrid = panel.AddCheckbox("Show Grid", true)
	g.widgetShowWind = panel.AddCheckbox("Show Wind", true)

	panel.AddButton("Reset Defaults", func() {
		g.widgetPerception.Value = cfg.Factors.PerceptionRadius
		g.widgetSeparation.Value = cfg.Factors.Separation
		g.widgetAlignment.Value = cfg.Factors.Alignment
		g.widgetCohesion.Value = cfg.Factors.Cohesion
		g.widgetWindStrength.Value = cfg.Factors.WindStrength
		g.widgetWindX.Value = 1
		g.widgetWindY.Value = 0
		g.widgetWindZ.Value = 0
		g.widgetNumAgents.Value = float64(cfg.NumAgents)
	})

	g.panel = panel
	return g
}

func (g *Game) Update() error {
	g.panel.Update()
	g.handlePointer()

	g.env.SetWind(g.wind())
	g.cam.ChaseMode = g.widgetChaseMode.Value
	g.cam.ShowGrid = g.widgetShowGrid.Value
	g.cam.ShowWind = g.widgetShowWind.Value

	if count := int(g.widgetNumAgents.Value); count != len(g.flk.Agents) {
		g.flk.Resize(count)
	}

	g.cam.Update(g.flk.Positions())
	g.flk.Tick(g.cam, g.env, g.factors())
	return nil
}

func (g *Game) factors() flock.Factors {
	return flock.Factors{
		PerceptionRadius: g.widgetPerception.Value,
		Separation:       g.widgetSeparation.Value,
		Alignment:        g.widgetAlignment.Value,
		Cohesion:         g.widgetCohesion.Value,
		WindStrength:     g.widgetWindStrength.Value,
	}
}

func (g *Game) wind() geometry.Vector3D {
	return geometry.Vector3D{
		X: g.widgetWindX.Value,
		Y: g.widgetWindY.Value,
		Z: g.widgetWindZ.Value,
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		!g.panel.Contains(float64(mx), float64(my)) {
		g.dragging = true
		g.dragTotal = 0
		g.lastMX, g.lastMY = mx, my
	}

	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx, dy := float64(mx-g.lastMX), float64(my-g.lastMY)
		g.dragTotal += abs(dx) + abs(dy)
		g.lastMX, g.lastMY = mx, my
		g.cam.Orbit(dx*orbitSensitivity, dy*orbitSensitivity)
	}

	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		if g.dragTotal < clickSlop {
			world := g.cam.Unproject(float64(mx), float64(my), g.viewportW, g.viewportH)
			g.env.SetRepelPoint(world)
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(-wy * zoomSensitivity)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	if g.cam.ShowGrid {
		render.DrawGrid(screen, g.cam, g.cfg.Bounds, g.viewportW, g.viewportH)
	}
	if g.cam.ShowWind {
		render.DrawWindArrow(screen, g.cam, g.env.Wind(), g.viewportW, g.viewportH)
	}

	frame := render.BuildFrame(g.flk, g.cam, g.env, g.viewportW, g.viewportH)
	render.DrawAgents(screen, frame)
	render.DrawRepelMarker(screen, frame.Repel)

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.2f\nAgents: %d", ebiten.ActualFPS(), len(g.flk.Agents))
	ebitenutil.DebugPrintAt(screen, msg, int(g.viewportW)-130, 10)
}

// Layout follows the window size so the projection viewport tracks resizes.
func (g *Game) Layout(w, h int) (int, int) {
	g.viewportW, g.viewportH = float64(w), float64(h)
	return w, h
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	configFile := flag.String("config", "", "path to a JSON configuration file")
	schemaFile := flag.String("schema", "docs/config.schema.json", "path to the configuration JSON schema")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading config %s: %v", *configFile, err)
		}
		cfg = loaded
	}

	g := newGame(cfg)

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Flock3D")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
