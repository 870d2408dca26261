package vrcursor

import "testing"

func BenchmarkNormalize(b *testing.B) {
	r := MotionRange{Min: 0, Max: 1023}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		normalize(float64(i%1024), 512, r, r, ActionMove, 0, false)
	}
}

func BenchmarkApplySample(b *testing.B) {
	c := newTestController(testProvider(90, 1))
	s := normalizedSample{x: 0.25, y: -0.5, active: true}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.applySample(s)
	}
}

type noopSink struct{}

func (noopSink) applySample(normalizedSample) {}

func BenchmarkWorkerSubmit(b *testing.B) {
	w := newEventWorker(singleSinkResolver(noopSink{}))
	w.start()
	defer w.stop()

	ev := moveEvent(512, 512)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.submit(0, ev)
	}
}
