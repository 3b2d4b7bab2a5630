// Package pie3d renders extruded ("3D") pie charts onto an abstract drawing surface.
//
// # Overview
//
// pie3d turns a list of weighted slices into an ordered sequence of fill, stroke
// and text requests. It never rasterizes anything itself: the caller supplies a
// [Surface], typically a [github.com/gogpu/pie3d/recording.Recorder], and encodes
// the result to PNG, SVG, PDF or EPS afterwards.
//
// # Quick Start
//
//	cfg := pie3d.DefaultConfig()
//	cfg.Width, cfg.Height = 400, 400
//	cfg.Title = "Traffic"
//
//	slices := []pie3d.Slice{
//	    {Value: 3, Color: pie3d.MustParseHex("#ffbe00"), Label: "web"},
//	    {Value: 1, Color: pie3d.MustParseHex("#ff0000"), Label: "mail", Explode: 0.2},
//	}
//
//	rec := recording.NewRecorder(400, 400)
//	if err := pie3d.Render(rec, cfg, slices); err != nil {
//	    // handle
//	}
//
// # Pipeline
//
// A render runs five phases in order, each one pure:
//
//   - [Normalize] converts magnitudes into contiguous angular spans.
//   - [SolveLayout] fits the ellipse radii and center into the canvas.
//   - [BuildGeometry] derives the top and bottom corner points of every slice.
//   - [ResolveOrder] sorts the visible side walls back to front.
//   - the face renderer issues the draw requests, walls first, tops last.
//
// There is no depth buffer: visual correctness depends only on the order in
// which the walls are painted.
//
// # Coordinate System
//
// Canvas coordinates: origin at top-left, Y grows down, angles in radians, 0 points
// right and angles grow clockwise on screen (towards the viewer). The front of
// the drum is therefore the half (0, π).
package pie3d
