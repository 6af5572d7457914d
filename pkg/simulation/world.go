// Package simulation hosts the flock behind a goakt actor. The WorldActor
// exclusively owns the flock, environment and camera; every mutation arrives
// as a message through its mailbox, so ticks are serialized and nothing can
// touch the agent collection mid-tick.
package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/camera"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/render"
)

// Snapshot is one frame of render state pushed from the world to the UI.
// Camera is a copy so the UI can unproject clicks against the view that
// actually produced the frame.
type Snapshot struct {
	Frame  *render.Frame
	Camera camera.Camera
	Wind   geometry.Vector3D
	Count  int
}

// WorldActor owns the authoritative simulation state.
type WorldActor struct {
	flk *flock.Flock
	env *flock.Environment
	cam *camera.Camera

	factors flock.Factors
	cfg     *flock.Config

	viewportW float64
	viewportH float64

	// Communication with UI
	snapshotCh chan<- *Snapshot

	// --- Benchmark Stats ---
	tickCount    int
	msgRecvCount int
	lastLogTime  time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit.
func NewWorldActor(snapshotCh chan<- *Snapshot, cfg *flock.Config) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		factors:     cfg.Factors,
		snapshotCh:  snapshotCh,
		viewportW:   cfg.ScreenWidth,
		viewportH:   cfg.ScreenHeight,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is preparing the flock...")
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started. Spawning %d agents...", w.cfg.NumAgents)
		w.env = flock.NewEnvironment(w.cfg.Bounds)
		w.cam = camera.New()
		w.flk = flock.New(w.cfg)

	// The main simulation step, driven by the game loop.
	case *pb.Tick:
		w.msgRecvCount++
		w.tickCount++
		w.logBenchmarks(ctx)

		w.cam.Update(w.flk.Positions())
		w.flk.Tick(w.cam, w.env, w.factors)
		w.pushSnapshot()

	// Dynamic settings from the UI panel.
	case *pb.UpdateSettings:
		w.msgRecvCount++
		w.factors = flock.Factors{
			PerceptionRadius: msg.GetPerceptionRadius(),
			Separation:       msg.GetSeparation(),
			Alignment:        msg.GetAlignment(),
			Cohesion:         msg.GetCohesion(),
			WindStrength:     msg.GetWindStrength(),
		}
		w.env.SetWind(geometry.Vector3D{X: msg.GetWindX(), Y: msg.GetWindY(), Z: msg.GetWindZ()})
		w.cam.ChaseMode = msg.GetChaseMode()

	case *pb.OrbitCamera:
		w.msgRecvCount++
		w.cam.Orbit(msg.GetDeltaAzimuth(), msg.GetDeltaElevation())

	case *pb.ZoomCamera:
		w.msgRecvCount++
		w.cam.Zoom(msg.GetDeltaDistance())

	case *pb.SetRepelPoint:
		w.msgRecvCount++
		w.env.SetRepelPoint(geometry.Vector3D{X: msg.GetX(), Y: msg.GetY(), Z: msg.GetZ()})

	case *pb.ClearRepelPoint:
		w.msgRecvCount++
		w.env.ClearRepelPoint()

	case *pb.Resize:
		w.msgRecvCount++
		w.flk.Resize(int(msg.GetCount()))

	case *pb.SetViewport:
		w.msgRecvCount++
		w.viewportW = msg.GetWidth()
		w.viewportH = msg.GetHeight()

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutting down...")
	return nil
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("MSG RATE: %d/sec | Ticks: %d | Agents: %d",
			w.msgRecvCount, w.tickCount, len(w.flk.Agents))
		w.msgRecvCount = 0
		w.tickCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	snapshot := &Snapshot{
		Frame:  render.BuildFrame(w.flk, w.cam, w.env, w.viewportW, w.viewportH),
		Camera: *w.cam,
		Wind:   w.env.Wind(),
		Count:  len(w.flk.Agents),
	}

	select {
	case w.snapshotCh <- snapshot:
	default:
		// UI busy, skip frame
	}
}
