// Package telemetry collects simulation measurements: bounded time series
// for on-screen strip charts, named timer spans for profiling, and a
// best-effort flight log on disk.
package telemetry

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// MaxSamples bounds every series; the oldest sample is dropped first.
const MaxSamples = 100

// Series is one recorded metric with fixed display bounds.
type Series struct {
	Name string
	Min  float64
	Max  float64

	samples []float64
}

// Samples returns the recorded values, oldest first. The slice is shared;
// callers must not mutate it.
func (s *Series) Samples() []float64 {
	return s.samples
}

func (s *Series) push(v float64) {
	s.samples = append(s.samples, v)
	if len(s.samples) > MaxSamples {
		s.samples = s.samples[1:]
	}
}

// Recorder accumulates samples for a fixed set of series. Samples arriving
// faster than the minimum interval are dropped, so callers can log every
// tick without flooding the charts. Every accepted Log call appends one
// sample to every series, with a zero default for metrics the call omits,
// which keeps all series aligned in time.
type Recorder struct {
	series      []*Series
	byName      map[string]*Series
	minInterval time.Duration
	lastLog     time.Time
	now         func() time.Time
}

// NewRecorder returns a recorder that accepts at most one sample batch per
// minInterval.
func NewRecorder(minInterval time.Duration) *Recorder {
	return &Recorder{
		byName:      make(map[string]*Series),
		minInterval: minInterval,
		now:         time.Now,
	}
}

// AddSeries registers a metric with its chart bounds. Registering the same
// name twice keeps the first definition.
func (r *Recorder) AddSeries(name string, min, max float64) *Series {
	if s, ok := r.byName[name]; ok {
		return s
	}
	s := &Series{Name: name, Min: min, Max: max}
	r.series = append(r.series, s)
	r.byName[name] = s
	return s
}

// Log records one sample batch. Metrics missing from data get 0. Returns
// false when the batch arrived inside the minimum interval and was dropped.
func (r *Recorder) Log(data map[string]float64) bool {
	now := r.now()
	if !r.lastLog.IsZero() && now.Sub(r.lastLog) < r.minInterval {
		return false
	}
	r.lastLog = now
	for _, s := range r.series {
		s.push(data[s.Name])
	}
	return true
}

// Series returns all registered series in registration order.
func (r *Recorder) Series() []*Series {
	return r.series
}

// Timer collects named durations. Start and End bracket a span; repeated
// spans under the same tag accumulate.
type Timer struct {
	durations map[string][]time.Duration
	started   map[string]time.Time
	now       func() time.Time
}

// NewTimer returns an empty Timer.
func NewTimer() *Timer {
	return &Timer{
		durations: make(map[string][]time.Duration),
		started:   make(map[string]time.Time),
		now:       time.Now,
	}
}

// Start opens a span under tag, replacing any still-open span with the same
// tag.
func (t *Timer) Start(tag string) {
	t.started[tag] = t.now()
}

// End closes the span under tag. An End without a matching Start is
// ignored.
func (t *Timer) End(tag string) {
	begin, ok := t.started[tag]
	if !ok {
		return
	}
	delete(t.started, tag)
	t.durations[tag] = append(t.durations[tag], t.now().Sub(begin))
}

// Describe writes a min/max/avg summary per tag, sorted by tag name.
func (t *Timer) Describe(w io.Writer) {
	tags := make([]string, 0, len(t.durations))
	for tag := range t.durations {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		spans := t.durations[tag]
		min, max, sum := spans[0], spans[0], time.Duration(0)
		for _, d := range spans {
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
			sum += d
		}
		avg := sum / time.Duration(len(spans))
		fmt.Fprintf(w, "%s [count=%d] min: %v, max: %v, avg: %v\n", tag, len(spans), min, max, avg)
	}
}

// Track wraps fn so every call is timed under tag.
func (t *Timer) Track(tag string, fn func()) func() {
	return func() {
		t.Start(tag)
		fn()
		t.End(tag)
	}
}
