package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection reasons reported by IncRejected.
const (
	ReasonMissingPrompt = "missing_prompt"
	ReasonTooLong       = "too_long"
	ReasonInternal      = "internal_error"
)

// Recorder tracks landing page generation. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	reg        *prom.Registry
	generated  *prom.CounterVec
	sections   *prom.CounterVec
	duration   prom.Histogram
	rejections *prom.CounterVec
}

// NewRecorder registers the generation metrics on reg, or on a fresh
// registry when reg is nil.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		reg: reg,
		generated: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "landing",
			Name:      "pages_generated_total",
			Help:      "Generated landing pages by color scheme",
		}, []string{"scheme"}),
		sections: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "landing",
			Name:      "sections_rendered_total",
			Help:      "Optional sections included in generated pages",
		}, []string{"section"}),
		duration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "landing",
			Name:      "generation_duration_seconds",
			Help:      "Time spent extracting signals and composing a page",
			Buckets:   []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		rejections: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "landing",
			Name:      "requests_rejected_total",
			Help:      "Generation requests that did not produce a page",
		}, []string{"reason"}),
	}
	reg.MustRegister(r.generated, r.sections, r.duration, r.rejections)
	return r
}

// ObserveGeneration records one successful page.
func (r *Recorder) ObserveGeneration(scheme string, sections []string, d time.Duration) {
	if r == nil {
		return
	}
	r.generated.WithLabelValues(scheme).Inc()
	for _, s := range sections {
		r.sections.WithLabelValues(s).Inc()
	}
	r.duration.Observe(d.Seconds())
}

func (r *Recorder) IncRejected(reason string) {
	if r == nil {
		return
	}
	r.rejections.WithLabelValues(reason).Inc()
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Generated returns the counter for scheme, for tests.
func (r *Recorder) Generated(scheme string) prom.Counter {
	return r.generated.WithLabelValues(scheme)
}

// Rejected returns the counter for reason, for tests.
func (r *Recorder) Rejected(reason string) prom.Counter {
	return r.rejections.WithLabelValues(reason)
}
