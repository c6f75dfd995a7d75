package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/genetic"
	"github.com/katalvlaran/stringart/tabu"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNilRegisterer indicates NewRecorder was given no registry.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Recorder owns the stringart collectors.
type Recorder struct {
	chordsCommitted prometheus.Counter
	stepDuration    prometheus.Histogram
	residualSumAbs  prometheus.Gauge
	generations     prometheus.Counter
	bestFitness     prometheus.Gauge
	cacheChords     prometheus.Gauge
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	r := &Recorder{
		chordsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stringart_chords_committed_total",
			Help: "Total chords committed by the tabu search",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stringart_step_duration_seconds",
			Help:    "Tabu step duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}),
		residualSumAbs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stringart_residual_sum_abs",
			Help: "Sum of absolute residual values after the last commit",
		}),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stringart_generations_total",
			Help: "Total populations evaluated by the genetic search",
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stringart_best_fitness",
			Help: "Best fitness of the last evaluated population",
		}),
		cacheChords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stringart_cache_chords",
			Help: "Chords held by the chord cache",
		}),
	}

	for _, c := range []prometheus.Collector{
		r.chordsCommitted, r.stepDuration, r.residualSumAbs,
		r.generations, r.bestFitness, r.cacheChords,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// ObserveStep records one committed chord.
func (r *Recorder) ObserveStep(s tabu.Step) {
	r.chordsCommitted.Inc()
	r.stepDuration.Observe(s.Elapsed.Seconds())
	r.residualSumAbs.Set(s.ResidualSum)
}

// ObserveGeneration records one evaluated population.
func (r *Recorder) ObserveGeneration(g genetic.GenerationStats) {
	r.generations.Inc()
	r.bestFitness.Set(g.Best)
}

// ObserveCache records the size of a freshly built cache.
func (r *Recorder) ObserveCache(c *chord.Cache) {
	if c == nil {
		return
	}
	r.cacheChords.Set(float64(c.Len()))
}

// WriteTextfile writes every metric of g to path in the text exposition
// format, atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
