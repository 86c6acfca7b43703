// Package curve3 provides numerical primitives for smoothing and indexing 3D
// paths: a centripetal Catmull-Rom spline with arc-length sampling, and Morton
// (Z-order) codes for linearizing 3D integer coordinates.
//
// # Splines
//
// [FitCatmullRom] fits a centripetal Catmull-Rom spline to an ordered list of
// control points. The centripetal parametrization scales each knot increment
// with the square root of the control-point spacing, which avoids the cusps
// and self-intersections the uniform variant produces on unevenly spaced
// points. The fitted curve interpolates every control point except the first
// and last, which only shape the end tangents; the exposed parameter range
// [0, 1] spans the second through second-to-last points.
//
// Fitting precomputes a table of cumulative arc length, so distance-based
// queries ([CatmullRom.SolveForArclen], [CatmullRom.EvalArclen],
// [CatmullRom.EquidistantSamples]) run in logarithmic time. The inversion is
// exact at table samples and linearly interpolated between them; the table
// resolution can be chosen with [FitCatmullRomLUT].
//
// A spline that could not be fitted (fewer than four distinct points, or zero
// total length) reports [CatmullRom.Valid] == false and answers every query
// with a safe zero value instead of failing. Out-of-range parameters and
// distances are clamped, never rejected.
//
// [SmoothPath] combines fitting and equidistant sampling into the common
// path-smoothing operation.
//
// # Morton codes
//
// [MortonEncode32] and [MortonEncode64] interleave the bits of three
// coordinates (10 or 21 bits per axis) into a single sortable key that
// preserves spatial locality; [MortonDecode32] and [MortonDecode64] invert
// them. The default implementations are table driven. The Magic variants
// compute the same mapping with bit-mixing arithmetic and share the exact
// input/output contract, so either family can be substituted for the other.
//
// # Concurrency
//
// A fitted [CatmullRom] is immutable and safe for concurrent reads. The
// Morton tables are initialized once at program start and never written
// afterwards.
package curve3
