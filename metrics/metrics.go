package metrics

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "karmakaze"

// Stages reported on shape rejections.
const (
	StageUnwrap    = "unwrap"
	StageFormat    = "format"
	StageObjectify = "objectify"
)

// Metrics counts pipeline outcomes. A nil *Metrics records nothing.
type Metrics struct {
	recordsFormatted *prometheus.CounterVec
	objectsBuilt     *prometheus.CounterVec
	shapeRejections  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}
	m.recordsFormatted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_formatted_total",
		Help:      "Entities renamed into public records, by entity kind",
	}, []string{"kind"})
	m.objectsBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "objects_built_total",
		Help:      "Top-level read-only objects built from raw responses, by entity kind",
	}, []string{"kind"})
	m.shapeRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shape_rejections_total",
		Help:      "Inputs that did not have the expected shape, by entity kind and stage",
	}, []string{"kind", "stage"})

	reg.MustRegister(m.recordsFormatted, m.objectsBuilt, m.shapeRejections)
	return m
}

func (m *Metrics) RecordFormatted(kind string) {
	if m == nil {
		return
	}
	m.recordsFormatted.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObjectsBuilt(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.objectsBuilt.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) ShapeRejected(kind, stage string) {
	if m == nil {
		return
	}
	m.shapeRejections.WithLabelValues(kind, stage).Inc()
}

// WriteText writes every family gathered from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	return writeFamilies(w, families)
}

func writeFamilies(w io.Writer, families []*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrapf(err, "encode metric family %s", mf.GetName())
		}
	}
	return nil
}
