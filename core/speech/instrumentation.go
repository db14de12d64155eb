package speech

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/koscakluka/lakshmi-path/core/speech"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

var (
	sessionsStarted, _ = meter.Int64Counter("narration.sessions.started",
		metric.WithDescription("Narration sessions started"))
	sessionsCancelled, _ = meter.Int64Counter("narration.sessions.cancelled",
		metric.WithDescription("Narration sessions cancelled before they settled"))
	utteranceFailures, _ = meter.Int64Counter("narration.utterances.failed",
		metric.WithDescription("Utterances the speech engine failed to play"))
)
