// Command facedemo filters images laid out as triangular faces.
//
// Each input image is fitted to a square of -res texels and its lower-left
// triangle is stored as a face of the requested data type. Every texel of
// the face is then filtered with a circular footprint of -radius texels and
// the result is written as <name>_filtered.png.
//
//	facedemo -dir testdata -input '*.{png,tif}' -type half -chan 3 -txchan 4
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/gogpu/facefilter"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML filter config (kernel_width, workers)")
		dir        = flag.String("dir", ".", "directory holding the input images")
		input      = flag.String("input", "*.png", "glob pattern for input file names")
		outDir     = flag.String("out", ".", "output directory")
		res        = flag.Int("res", 128, "face resolution in texels")
		typeName   = flag.String("type", "uint8", "texel data type: uint8, uint16, half, float")
		nChan      = flag.Int("chan", 3, "filtered channels (1-4)")
		nTxChan    = flag.Int("txchan", 4, "stored channels per texel")
		radius     = flag.Float64("radius", 2.5, "footprint radius in texels")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := newLogger(*verbose)
	slog.SetDefault(log)
	facefilter.SetLogger(log)

	opts := options{
		res:     *res,
		nChan:   *nChan,
		nTxChan: *nTxChan,
		radius:  *radius,
		outDir:  *outDir,
	}
	if err := run(*configPath, *dir, *input, *typeName, opts); err != nil {
		log.Error("facedemo failed", "err", err)
		os.Exit(1)
	}
}

// options are the per-face settings shared by all inputs.
type options struct {
	res     int
	dt      facefilter.DataType
	nChan   int
	nTxChan int
	radius  float64
	outDir  string
}

func run(configPath, dir, pattern, typeName string, opts options) error {
	cfg := facefilter.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = facefilter.LoadConfig(configPath); err != nil {
			return err
		}
	}

	dt, err := facefilter.ParseDataType(typeName)
	if err != nil {
		return fmt.Errorf("-type %q: %w", typeName, err)
	}
	opts.dt = dt
	if opts.nChan < 1 || opts.nChan > 4 {
		return fmt.Errorf("-chan %d: must be between 1 and 4", opts.nChan)
	}
	if opts.res < 1 {
		return fmt.Errorf("-res %d: must be positive", opts.res)
	}
	if opts.radius <= 0 {
		return fmt.Errorf("-radius %v: must be positive", opts.radius)
	}

	inputs, err := matchInputs(dir, pattern)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no files in %s match %q", dir, pattern)
	}

	batch := cfg.NewBatch()
	defer batch.Close()

	slog.Info("filtering faces",
		"inputs", len(inputs),
		"type", dt,
		"res", opts.res,
		"kernel_width", batch.Filter().KernelWidth(),
		"workers", batch.Workers())

	for _, path := range inputs {
		out, err := filterFile(batch, path, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		slog.Info("wrote face", "input", path, "output", out)
	}
	return nil
}

// matchInputs returns the sorted paths of the regular files in dir whose
// base names match pattern.
func matchInputs(dir, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("-input %q: %w", pattern, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && g.Match(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// outputPath returns the PNG path written for input.
func outputPath(outDir, input string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, name+"_filtered.png")
}

// newLogger writes text records to stderr, colouring the level when stderr
// is a terminal.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	tty := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	var w io.Writer
	if tty {
		w = colorable.NewColorableStderr()
	} else {
		w = colorable.NewNonColorable(os.Stderr)
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !tty || len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, _ := a.Value.Any().(slog.Level)
			return slog.String(a.Key, levelColor(lvl)+lvl.String()+"\x1b[0m")
		},
	})
	return slog.New(h)
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "\x1b[31m"
	case l >= slog.LevelWarn:
		return "\x1b[33m"
	case l >= slog.LevelInfo:
		return "\x1b[32m"
	default:
		return "\x1b[36m"
	}
}
