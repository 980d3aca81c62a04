package main

import (
	"bufio"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/christianzski/delaunay"
	"github.com/christianzski/delaunay/geometry"
)

// Demo of the triangulation package. Input is either newline separated
// points in the form "x y" on stdin (--stdin), or --count points sampled
// uniformly in a disk of --radius. The resulting triangulation can be
// rendered to a PNG and/or an interactive HTML chart.

var (
	count    = kingpin.Flag("count", "Number of random points to sample.").Default("100").Int()
	radius   = kingpin.Flag("radius", "Radius of the sampling disk.").Default("100").Float64()
	seed     = kingpin.Flag("seed", "Random seed; 0 seeds from the clock.").Default("0").Int64()
	useStdin = kingpin.Flag("stdin", "Read \"x y\" points from stdin instead of sampling.").Bool()
	pngPath  = kingpin.Flag("png", "Write a PNG rendering to this path.").String()
	htmlPath = kingpin.Flag("html", "Write an interactive HTML chart to this path.").String()
	pngScale = kingpin.Flag("scale", "Pixels per input unit in the PNG rendering.").Default("4").Float64()
)

func main() {
	kingpin.Parse()
	log := newLogger()
	defer log.Sync()

	var points []geometry.Point
	if *useStdin {
		points = readPoints(os.Stdin)
		log.Info("read points", zap.Int("count", len(points)))
	} else {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(*seed))
		points = generatePoints(rng, *count, *radius)
		log.Info("sampled points",
			zap.Int("count", len(points)),
			zap.Float64("radius", *radius),
			zap.Int64("seed", *seed))
	}

	start := time.Now()
	triangles, err := delaunay.Triangulate(points)
	if err != nil {
		log.Fatal("triangulation failed", zap.Error(err))
	}
	log.Info("triangulated",
		zap.Int("triangles", len(triangles)),
		zap.Duration("elapsed", time.Since(start)))

	if *pngPath != "" {
		if err := renderPNG(*pngPath, points, triangles, *pngScale); err != nil {
			log.Fatal("png rendering failed", zap.Error(err))
		}
		log.Info("wrote png", zap.String("path", *pngPath))
	}

	if *htmlPath != "" {
		if err := renderHTML(*htmlPath, points, triangles); err != nil {
			log.Fatal("html rendering failed", zap.Error(err))
		}
		log.Info("wrote html", zap.String("path", *htmlPath))
	}
}

func newLogger() *zap.Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[2006-01-02 | 15:04:05]"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.AddSync(os.Stderr),
		zap.InfoLevel,
	)
	return zap.New(core)
}

// generatePoints samples n points in a disk of the given radius.
func generatePoints(rng *rand.Rand, n int, radius float64) []geometry.Point {
	points := make([]geometry.Point, 0, n)
	for i := 0; i < n; i++ {
		r := rng.Float64() * radius
		theta := rng.Float64() * 2 * math.Pi
		points = append(points, geometry.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
	}
	return points
}

func readPoints(in *os.File) []geometry.Point {
	points := []geometry.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) geometry.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return geometry.Point{X: x, Y: y}
}

const pngPadding = 20

func renderPNG(path string, points []geometry.Point, triangles []geometry.Triangle, scale float64) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + pngPadding*2
	height := int(scale*(maxY-minY)) + pngPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(pngPadding, pngPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0.2, 0.4, 0.8)
	for _, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
	}
	c.Stroke()

	c.SetRGB(0.8, 0.2, 0.2)
	for _, p := range points {
		c.DrawPoint(p.X, p.Y, 2/scale)
	}
	c.Fill()

	return c.SavePNG(path)
}

func renderHTML(path string, points []geometry.Point, triangles []geometry.Triangle) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1020px",
			Height: "580px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Delaunay triangulation",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
	)

	scatterData := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		scatterData = append(scatterData, opts.ScatterData{
			Value:      []float64{p.X, p.Y},
			SymbolSize: 5,
		})
	}
	scatter.AddSeries("points", scatterData)

	// Draw each triangle edge once; shared edges appear in two triangles
	drawn := make(map[[4]float64]bool)
	for _, t := range triangles {
		for _, e := range t.Edges() {
			key := [4]float64{e.A.X, e.A.Y, e.B.X, e.B.Y}
			mirrored := [4]float64{e.B.X, e.B.Y, e.A.X, e.A.Y}
			if drawn[key] || drawn[mirrored] {
				continue
			}
			drawn[key] = true

			line := charts.NewLine()
			line.AddSeries("edges", []opts.LineData{
				{Value: []float64{e.A.X, e.A.Y}},
				{Value: []float64{e.B.X, e.B.Y}},
			}).SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{
					Width: 1,
				}),
			)

			scatter.Overlap(line)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
