// Package recording captures the draw requests of a chart and replays them
// to output backends.
//
// A Recorder is a pie3d.Surface. Rendering a chart onto it stores one typed
// command per request, in issue order, with the paths and paints cloned into
// a ResourcePool so the recording stays immutable. The finished Recording can
// be replayed any number of times to any Backend.
//
// Backends register themselves by name in init(), following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/pie3d/recording/backends/raster" // "png"
//
//	rec := recording.NewRecorder(400, 300)
//	if err := pie3d.Render(rec, cfg, slices); err != nil {
//	    return err
//	}
//	b, err := recording.NewBackend("png")
//	if err != nil {
//	    return err
//	}
//	if err := rec.FinishRecording().Playback(b); err != nil {
//	    return err
//	}
//	_, err = b.(recording.WriterBackend).WriteTo(out)
package recording
