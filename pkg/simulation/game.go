package simulation

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/render"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/ui"
)

const (
	orbitSensitivity = 0.01
	zoomSensitivity  = 25.0
	// A press-release pair that moved less than this many pixels counts as a
	// click (placing a repel point) instead of a drag (orbiting).
	clickSlop = 4.0
)

// Game is the ebiten front end of the actor-hosted simulation. It owns no
// simulation state: every frame it forwards the panel values and a Tick to
// the world actor and draws whatever snapshot came back.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *Snapshot
	lastState  *Snapshot

	// UI Controls
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

	cfg *flock.Config

	viewportW float64
	viewportH float64

	// Pointer drag state
	dragging  bool
	dragTotal float64
	lastMX    int
	lastMY    int

	lastAgentCount int

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// GetNewGame starts the actor system, spawns the world actor and builds the
// settings panel.
func GetNewGame(ctx context.Context, cfg *flock.Config) *Game {
	system, _ := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(golog.DiscardLogger),
	)
	_ = system.Start(ctx)

	snapshotCh := make(chan *Snapshot, 10) // Buffer to avoid blocking

	worldActor := NewWorldActor(snapshotCh, cfg)
	worldPID, err := system.Spawn(ctx, "world", worldActor)
	if err != nil {
		panic(fmt.Sprintf("Failed to spawn world: %v", err))
	}

	panel := ui.NewPanel(10, 10, 240, 570)

	panel.AddSection("Flocking")
	widgetPerception := panel.AddSlider("Perception Radius", 10, 200, cfg.Factors.PerceptionRadius)
	widgetSeparation := panel.AddSlider("Separation", 0, 3, cfg.Factors.Separation)
	widgetAlignment := panel.AddSlider("Alignment", 0, 3, cfg.Factors.Alignment)
	widgetCohesion := panel.AddSlider("Cohesion", 0, 3, cfg.Factors.Cohesion)

	panel.AddSection("Wind")
	widgetWindStrength := panel.AddSlider("Wind Strength", 0, 2, cfg.Factors.WindStrength)
	widgetWindX := panel.AddSlider("Wind X", -1, 1, 1)
	widgetWindY := panel.AddSlider("Wind Y", -1, 1, 0)
	widgetWindZ := panel.AddSlider("Wind Z", -1, 1, 0)

	panel.AddSection("Population")
	widgetNumAgents := panel.AddSlider("Agents", 1, 500, float64(cfg.NumAgents))

	panel.AddSection("View")
	widgetChaseMode := panel.AddCheckbox("Chase Camera", false)
	widgetShowGrid := panel.AddCheckbox("Show Grid", true)
	widgetShowWind := panel.AddCheckbox("Show Wind", true)

	panel.AddButton("Reset Defaults", func() {
		widgetPerception.Value = cfg.Factors.PerceptionRadius
		widgetSeparation.Value = cfg.Factors.Separation
		widgetAlignment.Value = cfg.Factors.Alignment
		widgetCohesion.Value = cfg.Factors.Cohesion
		widgetWindStrength.Value = cfg.Factors.WindStrength
		widgetWindX.Value = 1
		widgetWindY.Value = 0
		widgetWindZ.Value = 0
		widgetNumAgents.Value = float64(cfg.NumAgents)
	})

	return &Game{
		ctx:                ctx,
		System:             system,
		worldPID:           worldPID,
		snapshotCh:         snapshotCh,
		panel:              panel,
		widgetPerception:   widgetPerception,
		widgetSeparation:   widgetSeparation,
		widgetAlignment:    widgetAlignment,
		widgetCohesion:     widgetCohesion,
		widgetWindStrength: widgetWindStrength,
		widgetWindX:        widgetWindX,
		widgetWindY:        widgetWindY,
		widgetWindZ:        widgetWindZ,
		widgetNumAgents:    widgetNumAgents,
		widgetChaseMode:    widgetChaseMode,
		widgetShowGrid:     widgetShowGrid,
		widgetShowWind:     widgetShowWind,
		cfg:                cfg,
		viewportW:          cfg.ScreenWidth,
		viewportH:          cfg.ScreenHeight,
		lastAgentCount:     cfg.NumAgents,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0
		g.updateAvg = g.updateAvg*0.95 + elapsed*0.05
	}()

	// 1. Update UI panel and forward pointer input to the camera.
	g.panel.Update()
	g.handlePointer()

	// 2. Retrieve the latest snapshot (non-blocking).
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if a new one isn't ready
	}

	// 3. Push the panel values to the world.
	actor.Tell(g.ctx, g.worldPID, &pb.UpdateSettings{
		PerceptionRadius: g.widgetPerception.Value,
		Separation:       g.widgetSeparation.Value,
		Alignment:        g.widgetAlignment.Value,
		Cohesion:         g.widgetCohesion.Value,
		WindStrength:     g.widgetWindStrength.Value,
		WindX:            g.widgetWindX.Value,
		WindY:            g.widgetWindY.Value,
		WindZ:            g.widgetWindZ.Value,
		ChaseMode:        g.widgetChaseMode.Value,
	})

	if count := int(g.widgetNumAgents.Value); count != g.lastAgentCount {
		actor.Tell(g.ctx, g.worldPID, &pb.Resize{Count: int32(count)})
		g.lastAgentCount = count
	}

	// 4. Trigger the simulation step.
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: 1})

	return nil
}

// handlePointer translates raw mouse state into camera messages: drag to
// orbit, wheel to zoom, click-without-drag to drop a repel point.
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
		if dx != 0 || dy != 0 {
			actor.Tell(g.ctx, g.worldPID, &pb.OrbitCamera{
				DeltaAzimuth:   dx * orbitSensitivity,
				DeltaElevation: dy * orbitSensitivity,
			})
		}
	}

	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		if g.dragTotal < clickSlop && g.lastState != nil {
			world := g.lastState.Camera.Unproject(
				float64(mx), float64(my),
				g.viewportW, g.viewportH)
			actor.Tell(g.ctx, g.worldPID, &pb.SetRepelPoint{
				X: world.X, Y: world.Y, Z: world.Z,
			})
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		actor.Tell(g.ctx, g.worldPID, &pb.ZoomCamera{
			DeltaDistance: -wy * zoomSensitivity,
		})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0
		g.drawAvg = g.drawAvg*0.95 + elapsed*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	if g.lastState != nil {
		cam := g.lastState.Camera
		if g.widgetShowGrid.Value {
			render.DrawGrid(screen, &cam, g.cfg.Bounds, g.viewportW, g.viewportH)
		}
		if g.widgetShowWind.Value {
			render.DrawWindArrow(screen, &cam, g.lastState.Wind, g.viewportW, g.viewportH)
		}
		render.DrawAgents(screen, g.lastState.Frame)
		render.DrawRepelMarker(screen, g.lastState.Frame.Repel)
	}

	g.panel.Draw(screen)
	g.drawStats(screen)
}

func (g *Game) drawStats(screen *ebiten.Image) {
	count := 0
	if g.lastState != nil {
		count = g.lastState.Count
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nAgents: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		count,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.viewportW)-130, 10)
}

// Layout follows the window size and keeps the world's projection viewport
// in sync with it.
func (g *Game) Layout(w, h int) (int, int) {
	if float64(w) != g.viewportW || float64(h) != g.viewportH {
		g.viewportW, g.viewportH = float64(w), float64(h)
		actor.Tell(g.ctx, g.worldPID, &pb.SetViewport{Width: g.viewportW, Height: g.viewportH})
	}
	return w, h
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
