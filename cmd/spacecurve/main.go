// Command spacecurve evaluates a circle, an ellipse and a helix at a single
// parameter, prints their positions and derivatives, and sums the radii of
// the circles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"honnef.co/go/spacecurve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	t       float64
	workers int
	circles []float64
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	var circles string
	fs := flag.NewFlagSet("spacecurve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.t, "t", math.Pi/4, "Curve parameter to evaluate at")
	fs.IntVar(&cfg.workers, "workers", 0, "Goroutines used to sum radii (0 = GOMAXPROCS)")
	fs.StringVar(&circles, "circles", "", "Comma-separated radii of additional circles (e.g. 1.5,2,7)")
	fs.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.workers < 0 {
		return config{}, fmt.Errorf("-workers must not be negative, got %d", cfg.workers)
	}
	for _, f := range strings.Split(circles, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		r, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return config{}, fmt.Errorf("invalid -circles entry %q: %w", f, err)
		}
		cfg.circles = append(cfg.circles, r)
	}
	return cfg, nil
}

// buildCurves returns one curve of each kind, followed by the extra circles.
func buildCurves(extra []float64) ([]spacecurve.Curve, error) {
	circle, err := spacecurve.NewCircle(5)
	if err != nil {
		return nil, err
	}
	ellipse, err := spacecurve.NewEllipse(3, 4)
	if err != nil {
		return nil, err
	}
	helix, err := spacecurve.NewHelix(2, 1)
	if err != nil {
		return nil, err
	}
	curves := []spacecurve.Curve{circle, ellipse, helix}
	for _, r := range extra {
		c, err := spacecurve.NewCircle(r)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err != nil {
		logger.Error("invalid arguments", "error", err)
		return 2
	}

	curves, err := buildCurves(cfg.circles)
	if err != nil {
		logger.Error("failed to construct curves", "error", err)
		return 1
	}
	logger.Debug("curves constructed", "count", len(curves), "t", cfg.t, "workers", cfg.workers)

	start := time.Now()
	res := spacecurve.Run(curves, cfg.t, spacecurve.RunOptions{Workers: cfg.workers})
	logger.Debug("pipeline finished",
		"samples", len(res.Samples),
		"circles", len(res.Circles),
		"elapsed", time.Since(start))

	if err := writeReport(stdout, res); err != nil {
		logger.Error("failed to write report", "error", err)
		return 1
	}
	return 0
}

func writeReport(w io.Writer, res spacecurve.Result) error {
	for _, s := range res.Samples {
		p, d := s.Point, s.Tangent
		if _, err := fmt.Fprintf(w, "Curve: %s\nPoint: (%s, %s, %s)\nDerivative: (%s, %s, %s)\n\n",
			s.Kind,
			num(p.X), num(p.Y), num(p.Z),
			num(d.X), num(d.Y), num(d.Z),
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total sum of radii: %s\n", num(res.TotalRadius))
	return err
}

// num formats f with six significant digits.
func num(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
