package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/solheim/driftwars-client/config"
	"github.com/solheim/driftwars-client/gameloop"
	"github.com/solheim/driftwars-client/interp"
	"github.com/solheim/driftwars-client/network"
	"github.com/solheim/driftwars-client/systems"
	"github.com/solheim/driftwars-client/world"
)

const configFile = "driftwars.yaml"

// Playback delay adjustment per keypress, ms.
const delayStepMs = 10

type Game struct {
	client     *network.Client
	store      *world.Store
	entities   *interp.EntityBuffer
	snapshots  *interp.SnapshotBuffer
	translator *network.Translator
	resolver   *interp.Resolver

	loop     *gameloop.Loop
	intent   *systems.IntentSystem
	smoother *systems.DelaySmoother

	delayTargetMs float64
	wasConnected  bool
}

func NewGame() *Game {
	g := &Game{}

	g.client = network.NewClient()
	registry := world.NewRegistry()
	g.store = world.NewStore(registry)
	g.entities = interp.NewEntityBuffer(config.Netcode.SampleBufferCapacity, config.Netcode.PlaybackDelayMs)
	g.snapshots = interp.NewSnapshotBuffer(config.Netcode.SnapshotBufferCapacity)
	g.translator = network.NewTranslator(g.store, g.entities, g.snapshots)
	g.resolver = interp.NewResolver(g.entities, g.snapshots, g.store, interp.ResolverConfig{
		ExtrapolationCeilingMs: config.Netcode.ExtrapolationCeilingMs,
		Source:                 interp.SourceSnapshots,
	})

	g.intent = systems.NewIntentSystem(func(msg any) error {
		if g.client.State() != network.StateJoinedGame {
			return nil
		}
		return g.client.SendMessage(msg)
	})

	stepMs := 1000.0 / float64(config.Netcode.FixedStepRate)
	g.loop = gameloop.New(stepMs, g.intent.Step)
	g.loop.MaxStepsPerFrame = config.Netcode.MaxFixedStepsPerFrame

	g.smoother = systems.NewDelaySmoother(config.Netcode.PlaybackDelayMs)
	g.delayTargetMs = config.Netcode.PlaybackDelayMs

	g.client.Connect(config.C.ServerAddress, config.Version, config.C.PilotName)

	return g
}

func (g *Game) Update() error {
	// Drain and apply the inbound tick stream before any buffer reads, so
	// this frame observes a consistent, fully-applied write set.
	g.translator.ApplyAll(g.client.DrainEvents())

	state := g.client.State()
	joined := state == network.StateJoinedGame
	if g.wasConnected && (state == network.StateDisconnected || state == network.StateError) {
		// Buffered history does not survive a disconnect.
		log.Println("[game] connection lost, clearing buffered history")
		g.translator.Reset()
		g.loop.Reset()
	}
	g.wasConnected = joined

	g.handleTuningKeys()

	dt := 1.0 / float64(ebiten.TPS())
	g.entities.SetPlaybackDelayMs(g.smoother.Update(dt))

	g.loop.Advance(network.NowMs())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	renderTime := g.entities.PlaybackTime(network.NowMs())

	systems.DrawEntities(screen, g.resolver, g.store, g.client.PilotID(), renderTime)
	systems.DrawAim(screen, g.intent)
	if config.C.ShowHUD {
		systems.DrawHUD(screen, g.resolver, g.loop.DropWarnings(), g.client.State().String())
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// handleTuningKeys adjusts the netcode knobs at runtime:
// [ and ] move the playback delay, F3 toggles the HUD.
func (g *Game) handleTuningKeys() {
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) && g.delayTargetMs > delayStepMs {
		g.delayTargetMs -= delayStepMs
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		g.delayTargetMs += delayStepMs
		changed = true
	}
	if changed {
		config.Netcode.PlaybackDelayMs = g.delayTargetMs
		g.smoother.SetTarget(g.delayTargetMs)
		log.Printf("[game] playback delay -> %.0fms", g.delayTargetMs)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		config.C.ShowHUD = !config.C.ShowHUD
		changed = true
	}

	if changed {
		if err := config.SaveSettings(config.CurrentSettings()); err != nil {
			log.Printf("[game] could not save settings: %v", err)
		}
	}
}

func main() {
	if err := config.LoadFile(configFile); err != nil {
		log.Printf("Warning: %v", err)
	}

	if err := config.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := config.LoadSettings(); err == nil && saved != nil {
		config.ApplySavedSettings(saved)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("driftwars")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
