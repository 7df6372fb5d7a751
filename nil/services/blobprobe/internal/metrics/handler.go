package metrics

import (
	"github.com/NilFoundation/blobprobe/nil/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const namespace = "blobprobe_"

type handler interface {
	init(attributes metric.MeasurementOption, meter telemetry.Meter) error
}

func initHandler(name string, h handler) error {
	meter := telemetry.NewMeter(name)
	attributes := metric.WithAttributes(attribute.String("component", name))
	return h.init(attributes, meter)
}
