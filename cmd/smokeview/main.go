// Command smokeview shows the house scene with animated chimney smoke in
// an ebiten window.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gogpu/simplecanvas"
	"github.com/gogpu/simplecanvas/ebitensurface"
	"github.com/gogpu/simplecanvas/internal/house"
	"github.com/gogpu/simplecanvas/internal/wind"
)

const surfaceID = "scene"

// game steps the smoke once per ebiten tick onto an offscreen canvas and
// blits that canvas in Draw.
type game struct {
	width, height int

	canvas *ebiten.Image
	reg    *simplecanvas.Registry
	layout house.Layout
	gust   *wind.Gust
	smoke  *simplecanvas.SmokeEmitter
	params simplecanvas.SmokeParams
}

func newGame(w, h, spawn int, slope, rate, precision, gustMax, gustPeriod float64) *game {
	g := &game{
		width:  w,
		height: h,
		canvas: ebiten.NewImage(w, h),
		reg:    simplecanvas.NewRegistry(),
		layout: house.NewLayout(w, h),
		gust:   wind.NewGust(gustMax, gustPeriod),
		smoke:  simplecanvas.NewSmokeEmitter(),
	}
	g.reg.Register(surfaceID, ebitensurface.New(g.canvas))

	g.params = simplecanvas.DefaultSmokeParams()
	g.params.OriginX, g.params.OriginY = g.layout.SmokeOrigin()
	g.params.SpawnCount = spawn
	g.params.RiseSlope = slope
	g.params.RiseRate = rate
	g.params.Precision = precision
	return g
}

func (g *game) Update() error {
	if err := g.layout.Draw(g.reg, surfaceID); err != nil {
		return err
	}
	g.gust.Update(1 / float64(ebiten.TPS()))
	g.gust.Apply(&g.params)
	return g.reg.DrawSmoke(surfaceID, g.smoke, g.params)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nParticles: %d/%d\nWind: %s %.2f",
		ebiten.ActualTPS(), g.smoke.Live(), g.smoke.Capacity(), g.params.Wind, g.params.WindSpeed))
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func main() {
	var (
		width     = flag.Int("width", 640, "window width")
		height    = flag.Int("height", 480, "window height")
		tps       = flag.Int("tps", 10, "smoke steps per second")
		spawn     = flag.Int("spawn", 3, "particles spawned per step")
		slope     = flag.Float64("slope", 2, "rise slope")
		rate      = flag.Float64("rate", 8, "rise rate in pixels per step")
		precision = flag.Float64("precision", 0.8, "drift precision in [0, 1]")
		gustMax   = flag.Float64("gust", 2, "peak wind speed")
		gustSecs  = flag.Float64("gust-period", 3, "seconds per gust swing")
		verbose   = flag.Bool("v", false, "log smoke steps")
	)
	flag.Parse()

	if *verbose {
		simplecanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("simplecanvas smoke")

	g := newGame(*width, *height, *spawn, *slope, *rate, *precision, *gustMax, *gustSecs)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
