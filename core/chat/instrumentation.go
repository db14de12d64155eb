package chat

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/koscakluka/lakshmi-path/core/chat"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

var (
	intentsMatched, _ = meter.Int64Counter("chat.intents.matched",
		metric.WithDescription("Chat inputs answered by a scripted intent"))
	fallbackReplies, _ = meter.Int64Counter("chat.replies.fallback",
		metric.WithDescription("Chat inputs answered with the default response"))
	repliesDropped, _ = meter.Int64Counter("chat.replies.dropped",
		metric.WithDescription("Delayed replies discarded because the panel closed"))
)
