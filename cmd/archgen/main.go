// Command archgen prints the ordered points of a pointed arch profile.
//
//	archgen -width 3 -pointiness 0.5 -vertices 17
//	echo '{"width":3,"pointiness":0.5,"vertex_count":17}' | archgen -request -
//	archgen -format glsl > arch.glsl
//	archgen -pointiness 0.8 -eval 0,0.5
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/soypat/arch"
	"github.com/soypat/arch/form2"
	"github.com/soypat/arch/glsdf2"
	"gonum.org/v1/gonum/spatial/r2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("archgen failed", slog.Any("err", err))
		}
		os.Exit(1)
	}
}

type config struct {
	params  arch.Parameters
	request string
	format  string
	eval    string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{params: arch.DefaultParameters()}
	fs := flag.NewFlagSet("archgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.params.Width, "width", cfg.params.Width, "final width of the arch (> 0)")
	fs.Float64Var(&cfg.params.Pointiness, "pointiness", cfg.params.Pointiness, "0 gives a half circle, towards 1 a lancet arch")
	fs.IntVar(&cfg.params.Vertices, "vertices", cfg.params.Vertices, fmt.Sprintf("total vertices including apex [%d,%d]", arch.MinVertices, arch.MaxVertices))
	fs.StringVar(&cfg.request, "request", "", "read a JSON request {width,pointiness,vertex_count} from file, - for stdin")
	fs.StringVar(&cfg.format, "format", "json", "output format: json, spline or glsl")
	fs.StringVar(&cfg.eval, "eval", "", "print the signed distance from x,y to the arch region as json instead of the profile")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	err := fs.Parse(args)
	return cfg, err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	form2.SetLogger(log)

	if cfg.request != "" {
		cfg.params, err = readRequest(cfg.request, cfg.params, stdin)
		if err != nil {
			return err
		}
	}
	if cfg.params.Vertices > arch.MaxVertices {
		log.Warn("vertex count above usual range", slog.Int("vertices", cfg.params.Vertices), slog.Int("max", arch.MaxVertices))
	}
	if cfg.eval != "" {
		if cfg.format != "json" {
			return fmt.Errorf("-eval only writes json, got -format %q", cfg.format)
		}
		return writeDistance(stdout, cfg.params, cfg.eval)
	}
	profile, err := cfg.params.Generate()
	if err != nil {
		return err
	}
	log.Debug("generated pointed arch",
		slog.Int("points", profile.Len()),
		slog.Float64("width", profile.Width()),
		slog.Float64("height", profile.Height()),
	)
	return writeProfile(stdout, cfg.format, profile)
}

// readRequest decodes a JSON request on top of base so absent fields keep their flag values.
func readRequest(name string, base arch.Parameters, stdin io.Reader) (arch.Parameters, error) {
	r := stdin
	if name != "-" {
		fp, err := os.Open(name)
		if err != nil {
			return base, err
		}
		defer fp.Close()
		r = fp
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&base); err != nil {
		return base, fmt.Errorf("decoding request: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return base, errors.New("decoding request: unexpected data after request object")
	}
	return base, nil
}

func writeDistance(w io.Writer, params arch.Parameters, eval string) error {
	var p r2.Vec
	if _, err := fmt.Sscanf(eval, "%g,%g", &p.X, &p.Y); err != nil {
		return fmt.Errorf("parsing -eval %q: %w", eval, err)
	}
	region, err := form2.FromParameters(params)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(struct {
		X        float64 `json:"x"`
		Y        float64 `json:"y"`
		Distance float64 `json:"distance"`
	}{X: p.X, Y: p.Y, Distance: region.Evaluate(p)})
}

// spline is the poly spline layout of a 2D curve object in 3D modelling hosts.
type spline struct {
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Dimensions string       `json:"dimensions"`
	Points     [][4]float64 `json:"points"`
}

func writeProfile(w io.Writer, format string, profile arch.Profile) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(profile)
	case "spline":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(spline{
			Name:       "PointedArch",
			Type:       "POLY",
			Dimensions: "2D",
			Points:     profile.Homogeneous(),
		})
	case "glsl":
		shader, err := glsdf2.NewPointedArch(profile)
		if err != nil {
			return err
		}
		_, err = glsdf2.WriteShader(w, shader, make([]byte, 0, 1024))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
