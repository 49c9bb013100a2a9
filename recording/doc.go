// Package recording captures annotation drawing as commands.
//
// Recorder implements ggchart.Canvas. Instead of rasterizing, every state
// change that matters for output (transform, hint) and every drawing call
// is captured as a typed Command together with the paint, stroke and
// transform in effect. A finished Recording can be inspected or played back
// onto any other Canvas.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	if err := panel.Paint(rec, style); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd)
//	}
//
//	// Replay onto a raster surface
//	dst := surface.NewImageSurface(640, 480)
//	if err := r.Playback(dst); err != nil {
//	    return err
//	}
//
// Design follows Cairo's approach of typed command structs for
// inspectability rather than a binary serialization format.
package recording
