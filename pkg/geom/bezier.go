package geom

import "fmt"

// Degree selects the polynomial degree of a Bézier path.
type Degree int

const (
	Quadratic Degree = 2
	Cubic     Degree = 3
)

func (d Degree) String() string {
	switch d {
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Degree(%d)", int(d))
	}
}

// ParseDegree maps the names used in level files to a Degree.
func ParseDegree(s string) (Degree, error) {
	switch s {
	case "quadratic", "Quadratic":
		return Quadratic, nil
	case "cubic", "Cubic":
		return Cubic, nil
	}
	return 0, fmt.Errorf("unknown curve type %q", s)
}

// QuadraticAt evaluates (1−t)²P0 + 2(1−t)t·P1 + t²P2.
func QuadraticAt(t float64, p0, p1, p2 Vec2) Vec2 {
	u := 1 - t
	p := p0.Scale(u * u)
	p = p.Add(p1.Scale(2 * u * t))
	return p.Add(p2.Scale(t * t))
}

// CubicAt evaluates (1−t)³P0 + 3(1−t)²t·P1 + 3(1−t)t²·P2 + t³P3.
func CubicAt(t float64, p0, p1, p2, p3 Vec2) Vec2 {
	u := 1 - t
	uu := u * u
	tt := t * t
	p := p0.Scale(uu * u)
	p = p.Add(p1.Scale(3 * uu * t))
	p = p.Add(p2.Scale(3 * u * tt))
	return p.Add(p3.Scale(tt * t))
}

// Curve is an authored path: P0 is the start, the last point is the goal.
type Curve struct {
	Degree Degree
	Points []Vec2
}

// NewCurve checks that the number of control points matches the degree.
func NewCurve(d Degree, points ...Vec2) (Curve, error) {
	if d != Quadratic && d != Cubic {
		return Curve{}, fmt.Errorf("unsupported curve degree %v", d)
	}
	if len(points) != int(d)+1 {
		return Curve{}, fmt.Errorf("%v curve needs %d control points, got %d", d, int(d)+1, len(points))
	}
	cp := make([]Vec2, len(points))
	copy(cp, points)
	return Curve{Degree: d, Points: cp}, nil
}

// Start returns P0, or the zero vector for an empty curve.
func (c Curve) Start() Vec2 {
	if len(c.Points) == 0 {
		return Vec2{}
	}
	return c.Points[0]
}

// End returns the last control point.
func (c Curve) End() Vec2 {
	if len(c.Points) == 0 {
		return Vec2{}
	}
	return c.Points[len(c.Points)-1]
}

// At evaluates the curve; t is clamped to [0, 1].
func (c Curve) At(t float64) Vec2 {
	t = Clamp01(t)
	switch {
	case c.Degree == Cubic && len(c.Points) >= 4:
		return CubicAt(t, c.Points[0], c.Points[1], c.Points[2], c.Points[3])
	case len(c.Points) >= 3:
		return QuadraticAt(t, c.Points[0], c.Points[1], c.Points[2])
	}
	return c.Start()
}

// Sample returns n+1 evenly spaced (in t) points along the curve,
// for drawing the path as a polyline.
func (c Curve) Sample(n int) []Vec2 {
	if n < 1 {
		n = 1
	}
	out := make([]Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, c.At(float64(i)/float64(n)))
	}
	return out
}

// Clamp01 clamps t to [0, 1]. NaN maps to 1.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 || t != t {
		return 1
	}
	return t
}
