// Command lifegrid runs Conway's Game of Life on a grid that grows as the
// pattern spreads.
//
// Every generation is computed concurrently: the grid is split into column
// strips, one goroutine per strip counts neighbours, and after all of them
// finish a second round of goroutines applies the rule. The grid grows toward
// any edge a live cell approaches, up to -maxextent cells per side.
//
// Usage:
//
//	lifegrid [flags]
//
// In the window: Space pauses, N steps once while paused, C clears, R reloads
// the pattern, the left mouse button draws cells and the right one erases them.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/hans1song/lifegrid/internal/life"
	"github.com/hans1song/lifegrid/internal/pattern"
	"github.com/hans1song/lifegrid/internal/rule"
)

// Simulation configuration flags.
var (
	// gwidth is the initial number of columns.
	gwidth = flag.Int("width", life.DefaultSize, "Initial width of the grid in cells.")

	// gheight is the initial number of rows.
	gheight = flag.Int("height", life.DefaultSize, "Initial height of the grid in cells.")

	// maxExtent caps growth in both dimensions.
	maxExtent = flag.Int("maxextent", life.DefaultMaxExtent, "Maximum width and height the grid may grow to.")

	// nThreads is the number of goroutines per phase. Defaults to the number of logical CPUs.
	nThreads = flag.Int("threads", runtime.NumCPU(), "Number of concurrent workers per phase.")

	// patternName selects the seed; "random" fills the grid with a soup.
	patternName = flag.String("pattern", "glider", "Seed pattern: random or one of "+strings.Join(pattern.Names(), ", ")+".")

	// ruleName is a preset name or B/S notation.
	ruleName = flag.String("rule", "conway", "Rule preset ("+strings.Join(rule.Presets(), ", ")+") or B/S notation such as B36/S23.")

	// density is the chance of a live cell in a random soup.
	density = flag.Float64("density", 0.3, "Live cell probability for -pattern=random.")

	// seed drives the random soup. Zero means seed from the clock.
	seed = flag.Int64("seed", 0, "Random seed for -pattern=random (0 = time based).")

	// scale is the initial number of window pixels per cell.
	scale = flag.Int("scale", 6, "Window pixels per cell at start-up.")

	// tps is the number of generations per second in the window.
	tps = flag.Int("tps", 15, "Generations per second in window mode.")

	// benchmark runs without graphics for timing.
	benchmark = flag.Bool("benchmark", false, "Run in benchmark mode (no graphics) for timing analysis.")

	// generations is the number of steps to run in benchmark mode.
	generations = flag.Int("generations", 1000, "Total number of generations to run in benchmark mode.")
)

// Rendering colors.
var (
	livecolor = color.RGBA{0, 255, 0, 255}
	deadcolor = color.RGBA{0, 0, 0, 255}
	hudcolor  = color.RGBA{255, 255, 255, 255}
)

// Game implements the ebiten.Game interface around a life engine.
type Game struct {
	engine *life.Engine
	seed   pattern.Pattern
	paused bool
	canvas *ebiten.Image
	pix    []byte
	cellPx float64
}

// Update handles input and advances the simulation by one generation unless paused.
// See: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
func (g *Game) Update() error {
	grid := g.engine.Grid()
	step := !g.paused

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		step = g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.engine.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.engine.Clear()
		g.engine.LoadPattern(g.seed.Cells, 0, 0)
	}

	if g.cellPx > 0 {
		cx, cy := ebiten.CursorPosition()
		x, y := int(float64(cx)/g.cellPx), int(float64(cy)/g.cellPx)
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			grid.Set(x, y, true)
		} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			grid.Set(x, y, false)
		}
	}

	if !step {
		return nil
	}
	return g.engine.Step()
}

// Draw renders the grid scaled to fit the window, with the generation counter
// in the top-left corner and a status line at the bottom.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.engine.Grid()
	w, h := grid.Width(), grid.Height()

	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		g.canvas = ebiten.NewImage(w, h)
		g.pix = make([]byte, 4*w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := deadcolor
			if grid.Get(x, y) {
				c = livecolor
			}
			i := 4 * (y*w + x)
			g.pix[i], g.pix[i+1], g.pix[i+2], g.pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	g.canvas.WritePixels(g.pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.cellPx = min(float64(sw)/float64(w), float64(sh)/float64(h))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.cellPx, g.cellPx)
	screen.DrawImage(g.canvas, op)

	ebitenutil.DebugPrint(screen, strconv.Itoa(g.engine.Generation()))
	text.Draw(screen, g.status(), basicfont.Face7x13, 4, sh-6, hudcolor)
}

// status summarises rule, pattern, population and grid extent.
func (g *Game) status() string {
	grid := g.engine.Grid()
	name := g.seed.Name
	if g.seed.Author != "" {
		name += " by " + g.seed.Author
	}
	state := ""
	if g.paused {
		state = " [paused]"
	}
	return fmt.Sprintf("%s  %s  pop %d  %dx%d%s",
		g.engine.Rule(), name, grid.Population(), grid.Width(), grid.Height(), state)
}

// Layout uses the full window; Draw scales the grid into it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

// loadSeed resolves -pattern.
func loadSeed() (pattern.Pattern, error) {
	if *patternName != "random" {
		return pattern.Lookup(*patternName)
	}
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(s))
	return pattern.Random(max(*gwidth-4, 1), max(*gheight-4, 1), *density, r), nil
}

// main parses flags, seeds the grid, then either runs a headless benchmark or
// opens the window.
func main() {
	flag.Parse()

	if *gwidth > *maxExtent || *gheight > *maxExtent {
		log.Fatal("Initial grid is larger than -maxextent!")
	}
	if *nThreads < 1 {
		log.Fatal("-threads must be at least 1")
	}

	r, err := rule.Lookup(*ruleName)
	if err != nil {
		log.Fatal(err)
	}
	p, err := loadSeed()
	if err != nil {
		log.Fatal(err)
	}

	runtime.GOMAXPROCS(*nThreads)

	grid := life.NewWithLimit(*gwidth, *gheight, *maxExtent)
	engine := life.NewEngine(grid, r, *nThreads)
	engine.LoadPattern(p.Cells, 0, 0)

	if *benchmark {
		fmt.Printf("Running life benchmark...\n")
		fmt.Printf("Config: Threads=%d, Generations=%d, Width=%d, Height=%d, Pattern=%s, Rule=%s\n",
			*nThreads, *generations, *gwidth, *gheight, p.Name, r)

		startTime := time.Now()

		for i := 0; i < *generations; i++ {
			if err := engine.Step(); err != nil {
				log.Fatalf("generation %d: %v", i, err)
			}
		}

		duration := time.Since(startTime)
		ox, oy := grid.Origin()

		fmt.Printf("--- Benchmark Complete ---\n")
		fmt.Printf("Total time for %d generations with %d threads: %v\n", *generations, *nThreads, duration)
		fmt.Printf("Final grid: %dx%d, origin shifted by (%d, %d), population %d\n",
			grid.Width(), grid.Height(), ox, oy, grid.Population())
		return
	}

	ebiten.SetWindowSize(*gwidth**scale, *gheight**scale)
	ebiten.SetWindowTitle("Life")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tps)

	if err := ebiten.RunGame(&Game{engine: engine, seed: p}); err != nil {
		log.Fatal(err)
	}
}
