package ggchart_test

import (
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

func TestWithAntialias(t *testing.T) {
	for _, prior := range []bool{false, true} {
		rec := recording.NewRecorder()
		rec.SetAntialias(prior)

		restore := ggchart.WithAntialias(rec, !prior)
		if rec.Antialias() != !prior {
			t.Errorf("prior %v: Antialias() inside scope = %v, want %v", prior, rec.Antialias(), !prior)
		}
		restore()
		if rec.Antialias() != prior {
			t.Errorf("prior %v: Antialias() after restore = %v, want %v", prior, rec.Antialias(), prior)
		}
	}
}

func TestWithAntialias_Deferred(t *testing.T) {
	rec := recording.NewRecorder()
	func() {
		defer ggchart.WithAntialias(rec, true)()
		if !rec.Antialias() {
			t.Error("Antialias() inside deferred scope = false")
		}
	}()
	if rec.Antialias() {
		t.Error("Antialias() after deferred scope = true, want false")
	}
}
