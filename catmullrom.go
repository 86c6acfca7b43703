package curve3

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultLUTSamples is the arc-length table resolution used by
// [FitCatmullRom]. It keeps the distance→parameter inversion error well below
// typical sample spacings for paths spanning a few hundred world units.
const DefaultLUTSamples = 128

// CatmullRom is a centripetal Catmull-Rom spline fitted to an ordered list of
// control points. The curve interpolates every control point except the first
// and last, which only define the end tangents; parameter 0 maps to the
// second control point and parameter 1 to the second-to-last.
//
// A CatmullRom is immutable once fitted and safe for concurrent reads. The
// zero value is an invalid spline.
type CatmullRom struct {
	points []Point
	knots  []float64
	lut    []float64
	valid  bool
}

// FitCatmullRom fits a centripetal Catmull-Rom spline to points, using
// [DefaultLUTSamples] for the arc-length table.
//
// Adjacent duplicate points are dropped. The fit fails, leaving the spline
// invalid, if fewer than four distinct points remain or the curve has zero
// length. An invalid spline answers every query with a zero value; check
// [CatmullRom.Valid] once instead of handling errors per call.
func FitCatmullRom(points []Point) *CatmullRom {
	return FitCatmullRomLUT(points, DefaultLUTSamples)
}

// FitCatmullRomLUT is like [FitCatmullRom] with an explicit arc-length table
// resolution. Finer tables reduce the error of distance-based queries at a
// linear cost in fitting time and memory; lutSamples below 2 falls back to
// [DefaultLUTSamples].
func FitCatmullRomLUT(points []Point, lutSamples int) *CatmullRom {
	if lutSamples < 2 {
		lutSamples = DefaultLUTSamples
	}
	cr := &CatmullRom{}
	cr.points = make([]Point, 0, len(points))
	for _, p := range points {
		// A repeated point would produce a zero knot increment and
		// divisions by zero in the basis weights.
		if n := len(cr.points); n > 0 && p == cr.points[n-1] {
			continue
		}
		cr.points = append(cr.points, p)
	}
	if len(cr.points) < 4 {
		return cr
	}

	cr.knots = make([]float64, len(cr.points))
	for i := 1; i < len(cr.points); i++ {
		// Centripetal parametrization: increments grow with the square
		// root of the spacing.
		cr.knots[i] = cr.knots[i-1] + math.Sqrt(cr.points[i-1].Distance(cr.points[i]))
	}

	cr.fillLUT(lutSamples)
	cr.valid = cr.lut[len(cr.lut)-1] > 0
	return cr
}

// fillLUT tabulates cumulative arc length at uniform parameter steps across
// the usable span.
func (cr *CatmullRom) fillLUT(samples int) {
	grid := make([]float64, samples+1)
	floats.Span(grid, cr.knots[1], cr.knots[len(cr.knots)-2])
	cr.lut = make([]float64, samples+1)
	prev := cr.evalKnot(grid[0])
	for i := 1; i < len(grid); i++ {
		p := cr.evalKnot(grid[i])
		cr.lut[i] = cr.lut[i-1] + prev.Distance(p)
		prev = p
	}
}

// Valid reports whether the fit succeeded.
func (cr *CatmullRom) Valid() bool {
	return cr.valid
}

// Arclen returns the total arc length of the curve, as measured by the
// arc-length table. It returns 0 for an invalid spline.
func (cr *CatmullRom) Arclen() float64 {
	if !cr.valid {
		return 0
	}
	return cr.lut[len(cr.lut)-1]
}

// Eval evaluates the curve at parameter t. Values outside [0, 1] are clamped.
// An invalid spline evaluates to the zero point.
func (cr *CatmullRom) Eval(t float64) Point {
	if !cr.valid {
		return Point{}
	}
	t = min(max(t, 0), 1)
	lo := cr.knots[1]
	hi := cr.knots[len(cr.knots)-2]
	return cr.evalKnot(lo + t*(hi-lo))
}

// evalKnot evaluates the curve at a knot-space parameter using the
// Barry-Goldman pyramid for non-uniform Catmull-Rom splines.
func (cr *CatmullRom) evalKnot(t float64) Point {
	n := len(cr.points)
	i := sort.SearchFloat64s(cr.knots, t) - 1
	i = min(max(i, 1), n-3)

	t0, t1, t2, t3 := cr.knots[i-1], cr.knots[i], cr.knots[i+1], cr.knots[i+2]
	p0, p1, p2, p3 := cr.points[i-1], cr.points[i], cr.points[i+1], cr.points[i+2]

	a1 := p0.Lerp(p1, (t-t0)/(t1-t0))
	a2 := p1.Lerp(p2, (t-t1)/(t2-t1))
	a3 := p2.Lerp(p3, (t-t2)/(t3-t2))
	b1 := a1.Lerp(a2, (t-t0)/(t2-t0))
	b2 := a2.Lerp(a3, (t-t1)/(t3-t1))
	return b1.Lerp(b2, (t-t1)/(t2-t1))
}

// SolveForArclen returns the parameter at the given arc length from the start
// of the curve. Distances at or below 0 map to 0 and distances at or beyond
// [CatmullRom.Arclen] map to 1.
//
// The result is an approximation: it is exact at arc-length table samples and
// linearly interpolated between them.
func (cr *CatmullRom) SolveForArclen(arclen float64) float64 {
	if !cr.valid || arclen <= 0 {
		return 0
	}
	total := cr.lut[len(cr.lut)-1]
	if arclen >= total {
		return 1
	}
	i := sort.SearchFloat64s(cr.lut, arclen)
	lo, hi := cr.lut[i-1], cr.lut[i]
	frac := (arclen - lo) / (hi - lo)
	return (float64(i-1) + frac) / float64(len(cr.lut)-1)
}

// EvalArclen evaluates the curve at the given arc length from its start. It
// is the composition of [CatmullRom.Eval] and [CatmullRom.SolveForArclen].
func (cr *CatmullRom) EvalArclen(arclen float64) Point {
	return cr.Eval(cr.SolveForArclen(arclen))
}

// EquidistantSamples samples the curve at multiples of spacing, starting at
// arc length 0. The exact endpoint sample at t=1 is always appended, even
// when that breaks equidistance, so the result has at least two points. It
// returns nil for an invalid spline or a non-positive spacing.
func (cr *CatmullRom) EquidistantSamples(spacing float64) []Point {
	if !cr.valid || spacing <= 0 {
		return nil
	}
	total := cr.Arclen()
	out := make([]Point, 0, int(total/spacing)+2)
	for d := 0.0; d < total; d += spacing {
		out = append(out, cr.EvalArclen(d))
	}
	return append(out, cr.Eval(1))
}

// SmoothPath smooths a polyline by fitting a centripetal Catmull-Rom spline
// through its points and resampling it every sampleLength units. If the fit
// fails the input is returned unchanged, so callers can smooth
// opportunistically.
//
// Note that the smoothed path runs from the second to the second-to-last
// input point; duplicate the endpoints if they must be preserved.
func SmoothPath(points []Point, sampleLength float64) []Point {
	cr := FitCatmullRom(points)
	if !cr.Valid() {
		return points
	}
	return cr.EquidistantSamples(sampleLength)
}
