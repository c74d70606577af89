package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/solheim/driftwars-client/config"
	"github.com/solheim/driftwars-client/interp"
	"github.com/solheim/driftwars-client/shared/netconfig"
	"github.com/solheim/driftwars-client/world"
)

// Entity marker sizes in pixels, per kind.
var kindSizes = map[netconfig.KindID]float32{
	netconfig.KindShip:  12,
	netconfig.KindDrone: 8,
	netconfig.KindBolt:  4,
}

// DrawEntities renders every known entity at its resolved render-time
// position as a flat marker. Frozen entities draw gray, extrapolated ones get
// an outline, so buffering trouble is visible at a glance.
func DrawEntities(screen *ebiten.Image, resolver *interp.Resolver, store *world.Store, localID string, renderTime float64) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	for id, res := range resolver.QueryAll(netconfig.KindUnknown, renderTime) {
		st, ok := store.LiveState(id)
		if !ok {
			continue
		}

		size := kindSizes[st.Kind]
		if size == 0 {
			size = 6
		}

		var markerColor color.RGBA
		switch {
		case res.Frozen:
			markerColor = cfg.FrozenGray
		case id == localID:
			markerColor = cfg.BrightGreen
		case st.Kind == netconfig.KindShip:
			markerColor = cfg.ShipBlue
		case st.Kind == netconfig.KindDrone:
			markerColor = cfg.DroneAmber
		default:
			markerColor = cfg.BoltRed
		}

		// Map arena coordinates onto the screen.
		sx := float32(res.X / netconfig.ArenaWidth * w)
		sy := float32(res.Y / netconfig.ArenaHeight * h)

		vector.DrawFilledRect(screen, sx-size/2, sy-size/2, size, size, markerColor, false)
		if res.Extrapolated {
			vector.StrokeRect(screen, sx-size/2-2, sy-size/2-2, size+4, size+4, 1, cfg.White, false)
		}

		if st.Kind == netconfig.KindShip {
			if name, ok := store.Name(id); ok && name != "" {
				ebitenutil.DebugPrintAt(screen, name, int(sx)-len(name)*3, int(sy)-int(size)-14)
			}
		}
	}
}

// DrawAim renders the local aim cursor.
func DrawAim(screen *ebiten.Image, intent *IntentSystem) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	ax, ay := intent.Aim()
	sx := float32(ax / netconfig.ArenaWidth * w)
	sy := float32(ay / netconfig.ArenaHeight * h)
	vector.StrokeCircle(screen, sx, sy, 6, 1, cfg.LightGreen, true)
}

// DrawHUD renders the diagnostics overlay: buffer health, loop health and
// connection state.
func DrawHUD(screen *ebiten.Image, resolver *interp.Resolver, dropWarnings uint64, connState string) {
	d := resolver.Diagnostics()
	info := fmt.Sprintf(
		"%s | entities: %d | occupancy: %.0f%% | underruns: %d | delay: %.0fms | snapshots: %d | step drops: %d",
		connState, d.EntityCount, d.AverageOccupancy*100, d.UnderrunCount,
		d.PlaybackDelayMs, d.SnapshotCount, dropWarnings,
	)
	ebitenutil.DebugPrint(screen, info)
}
