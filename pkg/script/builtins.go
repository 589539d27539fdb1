package script

import (
	"fmt"
	"strings"

	v2 "github.com/deadsy/sdfx/vec/v2"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/curveforge/pkg/curve"
	"github.com/chazu/curveforge/pkg/curve/extrude"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms curve script source before passing it to
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     avoiding the need to register keyword symbols as globals.
//  2. Kebab-case to underscore outside keywords: serpentine-path ->
//     serpentine_path, since zygomys reads hyphens as subtraction.
//  3. Traditional Lisp ; comments become // comments.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Copy backtick-quoted string literals untouched.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters, so a
		// minus operator survives.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing pipeline values through the environment
// ---------------------------------------------------------------------------

// sexpProfile wraps a compound profile so path builtins can hand it to
// extrude. Single-polygon profiles ride wrapped in extrude.Single.
type sexpProfile struct {
	profile extrude.CompoundProfile
	desc    string
}

func (p *sexpProfile) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(profile %s)", p.desc)
}
func (p *sexpProfile) Type() *zygo.RegisteredType { return nil }

// sexpPath wraps an extrusion path.
type sexpPath struct {
	path extrude.Path
	desc string
}

func (p *sexpPath) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(path %s)", p.desc)
}
func (p *sexpPath) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks whether a Sexp is a preprocessed keyword string,
// returning the keyword name without its prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// argReader pulls keyword arguments out of a builtin's argument list,
// accumulating the first error it hits.
type argReader struct {
	fname string
	kw    map[string]zygo.Sexp
	err   error
}

func newArgReader(fname string, args []zygo.Sexp) *argReader {
	r := &argReader{fname: fname, kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok && i+1 < len(args) {
			r.kw[name] = args[i+1]
			i += 2
			continue
		}
		i++
	}
	return r
}

func (r *argReader) fail(name string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: %s: %w", r.fname, name, err)
	}
}

// float stores a numeric argument into dst if present.
func (r *argReader) float(name string, dst *float64) {
	v, ok := r.kw[name]
	if !ok || r.err != nil {
		return
	}
	switch n := v.(type) {
	case *zygo.SexpInt:
		*dst = float64(n.Val)
	case *zygo.SexpFloat:
		*dst = n.Val
	default:
		r.fail(name, fmt.Errorf("expected number, got %T", v))
	}
}

// integer stores an integer argument into dst if present.
func (r *argReader) integer(name string, dst *int) {
	v, ok := r.kw[name]
	if !ok || r.err != nil {
		return
	}
	if n, ok := v.(*zygo.SexpInt); ok {
		*dst = int(n.Val)
		return
	}
	r.fail(name, fmt.Errorf("expected integer, got %T", v))
}

// boolean stores a boolean argument into dst if present.
func (r *argReader) boolean(name string, dst *bool) {
	v, ok := r.kw[name]
	if !ok || r.err != nil {
		return
	}
	if b, ok := v.(*zygo.SexpBool); ok {
		*dst = b.Val
		return
	}
	r.fail(name, fmt.Errorf("expected bool, got %T", v))
}

// str stores a string argument into dst if present.
func (r *argReader) str(name string, dst *string) {
	v, ok := r.kw[name]
	if !ok || r.err != nil {
		return
	}
	if s, ok := v.(*zygo.SexpStr); ok {
		*dst = strings.TrimPrefix(s.S, kwPrefix)
		return
	}
	r.fail(name, fmt.Errorf("expected string or keyword, got %T", v))
}

// points2 stores a list-of-pairs argument ([[x y] [x y] ...]) into dst.
func (r *argReader) points2(name string, dst *[]v2.Vec) {
	v, ok := r.kw[name]
	if !ok || r.err != nil {
		return
	}
	elems, err := sexpListToSlice(v)
	if err != nil {
		r.fail(name, err)
		return
	}
	points := make([]v2.Vec, 0, len(elems))
	for _, e := range elems {
		pair, err := sexpListToSlice(e)
		if err != nil || len(pair) != 2 {
			r.fail(name, fmt.Errorf("expected [x y] pair"))
			return
		}
		x, err1 := toFloat64(pair[0])
		y, err2 := toFloat64(pair[1])
		if err1 != nil || err2 != nil {
			r.fail(name, fmt.Errorf("expected numeric pair"))
			return
		}
		points = append(points, v2.Vec{X: x, Y: y})
	}
	*dst = points
}

// profileArg stores a profile argument into dst if present.
func (r *argReader) profileArg(name string, dst *extrude.CompoundProfile) {
	v, ok := r.kw[name]
	if !ok || r.err != nil {
		return
	}
	if p, ok := v.(*sexpProfile); ok {
		*dst = p.profile
		return
	}
	r.fail(name, fmt.Errorf("expected profile, got %T", v))
}

// pathArg stores a path argument into dst if present.
func (r *argReader) pathArg(name string, dst *extrude.Path) {
	v, ok := r.kw[name]
	if !ok || r.err != nil {
		return
	}
	if p, ok := v.(*sexpPath); ok {
		*dst = p.path
		return
	}
	r.fail(name, fmt.Errorf("expected path, got %T", v))
}

func (r *argReader) finish() error {
	return r.err
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T", s)
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go
// slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toAnchor converts an anchor keyword to its enum value.
func toAnchor(name string) (extrude.Anchor, error) {
	switch name {
	case "", "center":
		return extrude.AnchorCenter, nil
	case "top-left":
		return extrude.AnchorTopLeft, nil
	case "top-center":
		return extrude.AnchorTopCenter, nil
	case "top-right":
		return extrude.AnchorTopRight, nil
	case "center-left":
		return extrude.AnchorCenterLeft, nil
	case "center-right":
		return extrude.AnchorCenterRight, nil
	case "bottom-left":
		return extrude.AnchorBottomLeft, nil
	case "bottom-center":
		return extrude.AnchorBottomCenter, nil
	case "bottom-right":
		return extrude.AnchorBottomRight, nil
	}
	return 0, fmt.Errorf("invalid anchor %q", name)
}

// toOffsetMode converts an offset keyword to its enum value.
func toOffsetMode(name string) (curve.OffsetMode, error) {
	switch name {
	case "", "middle":
		return curve.OffsetMiddle, nil
	case "top":
		return curve.OffsetTop, nil
	case "bottom":
		return curve.OffsetBottom, nil
	}
	return 0, fmt.Errorf("invalid offset mode %q, expected top, middle, or bottom", name)
}

// toOrientation converts an orientation keyword to its enum value.
func toOrientation(name string) (extrude.Orientation, error) {
	switch name {
	case "", "follow-path":
		return extrude.OrientFollowPath, nil
	case "xz":
		return extrude.OrientConstantXZ, nil
	case "yz":
		return extrude.OrientConstantYZ, nil
	case "xy":
		return extrude.OrientConstantXY, nil
	}
	return 0, fmt.Errorf("invalid orientation %q, expected follow-path, xz, yz, or xy", name)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the curve DSL builtins into a zygomys
// environment. Curve builtins bake brushes into the provided state as a
// side effect; profile and path builtins return values consumed by
// extrude.
//
// Source code must be preprocessed with preprocessSource before
// evaluation so that :keyword tokens arrive as recognizable strings.
func registerBuiltins(env *zygo.Zlisp, state *buildState) {

	bake := func(c curve.Curve) (zygo.Sexp, error) {
		brushes, err := c.Bake(state.builder)
		if err != nil {
			return zygo.SexpNull, err
		}
		state.brushes = append(state.brushes, brushes...)
		return &zygo.SexpInt{Val: int64(len(brushes))}, nil
	}

	// (metadata "Author: someone")
	env.AddFunction("metadata", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		for _, a := range args {
			s, ok := a.(*zygo.SexpStr)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("metadata: expected string, got %T", a)
			}
			state.metadata = append(state.metadata, s.S)
		}
		return zygo.SexpNull, nil
	})

	// (bank :n 24 :ri0 96 :ro0 160 :ri1 96 :ro1 160
	//       :theta0 0 :theta1 90 :h 32 :t 8 :fill true)
	env.AddFunction("bank", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("bank", args)
		var c curve.Bank
		r.integer("n", &c.N)
		r.float("ri0", &c.Ri0)
		r.float("ro0", &c.Ro0)
		r.float("ri1", &c.Ri1)
		r.float("ro1", &c.Ro1)
		r.float("theta0", &c.Theta0)
		r.float("theta1", &c.Theta1)
		r.float("h", &c.H)
		r.float("t", &c.T)
		r.boolean("fill", &c.Fill)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return bake(c)
	})

	// (classic :n 24 :ri0 96 :ro0 160 :ri1 96 :ro1 160
	//          :theta0 0 :theta1 90 :t 8)
	env.AddFunction("classic", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("classic", args)
		var c curve.Classic
		r.integer("n", &c.N)
		r.float("ri0", &c.Ri0)
		r.float("ro0", &c.Ro0)
		r.float("ri1", &c.Ri1)
		r.float("ro1", &c.Ro1)
		r.float("theta0", &c.Theta0)
		r.float("theta1", &c.Theta1)
		r.float("t", &c.T)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return bake(c)
	})

	// (slope :n 24 :ri0 96 :ro0 160 ... :hill-outer-top 16)
	env.AddFunction("slope", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("slope", args)
		var c curve.Slope
		r.integer("n", &c.N)
		r.float("ri0", &c.Ri0)
		r.float("ro0", &c.Ro0)
		r.float("ri1", &c.Ri1)
		r.float("ro1", &c.Ro1)
		r.float("theta0", &c.Theta0)
		r.float("theta1", &c.Theta1)
		r.float("height-inner-top-0", &c.HeightInnerTop0)
		r.float("height-inner-bot-0", &c.HeightInnerBot0)
		r.float("height-outer-top-0", &c.HeightOuterTop0)
		r.float("height-outer-bot-0", &c.HeightOuterBot0)
		r.float("height-inner-top-1", &c.HeightInnerTop1)
		r.float("height-inner-bot-1", &c.HeightInnerBot1)
		r.float("height-outer-top-1", &c.HeightOuterTop1)
		r.float("height-outer-bot-1", &c.HeightOuterBot1)
		r.float("hill-inner-top", &c.HillInnerTop)
		r.float("hill-inner-bot", &c.HillInnerBot)
		r.float("hill-outer-top", &c.HillOuterTop)
		r.float("hill-outer-bot", &c.HillOuterBot)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return bake(c)
	})

	// (rayto :n 6 :r0 64 :r1 64 :theta0 0 :theta1 90 :x 0 :y 0 :h 8)
	env.AddFunction("rayto", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("rayto", args)
		var c curve.Rayto
		r.integer("n", &c.N)
		r.float("r0", &c.R0)
		r.float("r1", &c.R1)
		r.float("theta0", &c.Theta0)
		r.float("theta1", &c.Theta1)
		r.float("x", &c.X)
		r.float("y", &c.Y)
		r.float("h", &c.H)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return bake(c)
	})

	// (serpentine :n0 12 :n1 12 :x 256 :z 128 :xm 128 :zm 64
	//             :w 64 :t 8 :offset :middle)
	env.AddFunction("serpentine", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("serpentine", args)
		var c curve.Serpentine
		var offset string
		r.integer("n0", &c.N0)
		r.integer("n1", &c.N1)
		r.float("x", &c.X)
		r.float("z", &c.Z)
		r.float("xm", &c.Xm)
		r.float("zm", &c.Zm)
		r.float("w", &c.W)
		r.float("t", &c.T)
		r.str("offset", &offset)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		mode, err := toOffsetMode(offset)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("serpentine: %w", err)
		}
		c.Offset = mode
		return bake(c)
	})

	// (catenary :n 24 :x0 0 :z0 0 :x1 256 :z1 0 :s 300 :w 16 :t 8)
	env.AddFunction("catenary", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("catenary", args)
		var c curve.Catenary
		r.integer("n", &c.N)
		r.float("x0", &c.X0)
		r.float("z0", &c.Z0)
		r.float("x1", &c.X1)
		r.float("z1", &c.Z1)
		r.float("s", &c.S)
		r.float("w", &c.W)
		r.float("t", &c.T)
		r.float("guess", &c.InitialGuess)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return bake(c)
	})

	// -----------------------------------------------------------------------
	// Profiles
	// -----------------------------------------------------------------------

	// (circle :n 12 :radius 32)
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("circle", args)
		var n int
		var radius float64
		r.integer("n", &n)
		r.float("radius", &radius)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		p, err := extrude.NewCircle(n, radius)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		return &sexpProfile{profile: extrude.Single{P: p}, desc: "circle"}, nil
	})

	// (circle-sector :n 12 :radius 32 :theta0 0 :theta1 90)
	env.AddFunction("circle_sector", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("circle-sector", args)
		var n int
		var radius, theta0, theta1 float64
		r.integer("n", &n)
		r.float("radius", &radius)
		r.float("theta0", &theta0)
		r.float("theta1", &theta1)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		p, err := extrude.NewCircleSector(n, radius, theta0, theta1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle-sector: %w", err)
		}
		return &sexpProfile{profile: extrude.Single{P: p}, desc: "circle-sector"}, nil
	})

	// (rectangle :width 32 :height 8 :anchor :center)
	env.AddFunction("rectangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("rectangle", args)
		var width, height float64
		var anchor string
		r.float("width", &width)
		r.float("height", &height)
		r.str("anchor", &anchor)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		a, err := toAnchor(anchor)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rectangle: %w", err)
		}
		return &sexpProfile{
			profile: extrude.Single{P: extrude.NewRectangle(width, height, a)},
			desc:    "rectangle",
		}, nil
	})

	// (parallelogram :width 32 :height 0 :offset-x 8 :offset-z 8 :anchor :center)
	env.AddFunction("parallelogram", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("parallelogram", args)
		var width, height, offsetX, offsetZ float64
		var anchor string
		r.float("width", &width)
		r.float("height", &height)
		r.float("offset-x", &offsetX)
		r.float("offset-z", &offsetZ)
		r.str("anchor", &anchor)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		a, err := toAnchor(anchor)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("parallelogram: %w", err)
		}
		return &sexpProfile{
			profile: extrude.Single{P: extrude.NewParallelogram(width, height, offsetX, offsetZ, a)},
			desc:    "parallelogram",
		}, nil
	})

	// (annulus :n 8 :ri 24 :ro 32 :theta0 0 :theta1 360)
	env.AddFunction("annulus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("annulus", args)
		var n int
		var ri, ro, theta0, theta1 float64
		r.integer("n", &n)
		r.float("ri", &ri)
		r.float("ro", &ro)
		r.float("theta0", &theta0)
		r.float("theta1", &theta1)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		p, err := extrude.NewAnnulus(n, ri, ro, theta0, theta1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("annulus: %w", err)
		}
		return &sexpProfile{profile: p, desc: "annulus"}, nil
	})

	// (polygon :points [[0 0] [32 0] [0 32]])
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("polygon", args)
		var points []v2.Vec
		r.points2("points", &points)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpProfile{
			profile: extrude.NewArbitrary([][]v2.Vec{points}),
			desc:    "polygon",
		}, nil
	})

	// -----------------------------------------------------------------------
	// Paths
	// -----------------------------------------------------------------------

	// (line :x 128 :y 0 :z 64)
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("line", args)
		var x, y, z float64
		r.float("x", &x)
		r.float("y", &y)
		r.float("z", &z)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpPath{path: extrude.NewLine(x, y, z), desc: "line"}, nil
	})

	// (revolve :radius 128 :theta0 0 :theta1 180)
	env.AddFunction("revolve", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("revolve", args)
		var radius, theta0, theta1 float64
		r.float("radius", &radius)
		r.float("theta0", &theta0)
		r.float("theta1", &theta1)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpPath{path: extrude.NewRevolve(radius, theta0, theta1), desc: "revolve"}, nil
	})

	// (sinusoid :amplitude 32 :period 256 :phase 0 :start 0 :end 512)
	env.AddFunction("sinusoid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("sinusoid", args)
		var amplitude, period, phase, start, end float64
		r.float("amplitude", &amplitude)
		r.float("period", &period)
		r.float("phase", &phase)
		r.float("start", &start)
		r.float("end", &end)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		p, err := extrude.NewSinusoid(amplitude, period, phase, start, end)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sinusoid: %w", err)
		}
		return &sexpPath{path: p, desc: "sinusoid"}, nil
	})

	// (bezier :points [[0 0] [64 128] [128 0]])
	env.AddFunction("bezier", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("bezier", args)
		var points []v2.Vec
		r.points2("points", &points)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		p, err := extrude.NewBezier(points)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("bezier: %w", err)
		}
		return &sexpPath{path: p, desc: "bezier"}, nil
	})

	// (catenary-path :span 256 :height 0 :s 300)
	env.AddFunction("catenary_path", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("catenary-path", args)
		var span, height, s float64
		r.float("span", &span)
		r.float("height", &height)
		r.float("s", &s)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		p, err := extrude.NewCatenary(span, height, s)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("catenary-path: %w", err)
		}
		return &sexpPath{path: p, desc: "catenary"}, nil
	})

	// (serpentine-path :x 256 :z 128)
	env.AddFunction("serpentine_path", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("serpentine-path", args)
		var x, z float64
		r.float("x", &x)
		r.float("z", &z)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		p, err := extrude.NewSerpentine(x, z)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("serpentine-path: %w", err)
		}
		return &sexpPath{path: p, desc: "serpentine"}, nil
	})

	// (extrude :n 12 :profile (circle :n 8 :radius 16)
	//          :path (revolve :radius 128 :theta0 0 :theta1 90)
	//          :orient :follow-path)
	env.AddFunction("extrude", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("extrude", args)
		var n int
		var profile extrude.CompoundProfile
		var path extrude.Path
		var orient string
		r.integer("n", &n)
		r.profileArg("profile", &profile)
		r.pathArg("path", &path)
		r.str("orient", &orient)
		if err := r.finish(); err != nil {
			return zygo.SexpNull, err
		}
		if profile == nil {
			return zygo.SexpNull, fmt.Errorf("extrude: missing :profile")
		}
		if path == nil {
			return zygo.SexpNull, fmt.Errorf("extrude: missing :path")
		}
		o, err := toOrientation(orient)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("extrude: %w", err)
		}
		brushes, err := extrude.ExtrudeCompound(n, profile, path, o, state.builder)
		if err != nil {
			return zygo.SexpNull, err
		}
		state.brushes = append(state.brushes, brushes...)
		return &zygo.SexpInt{Val: int64(len(brushes))}, nil
	})
}
