package wizard

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/koscakluka/lakshmi-path/core"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

var (
	stageTransitions, _ = meter.Int64Counter("wizard.stage.transitions",
		metric.WithDescription("Stage transitions, by target stage"))
	contentFallbacks, _ = meter.Int64Counter("wizard.content.fallbacks",
		metric.WithDescription("Region content lookups answered with the fallback content"))
)
