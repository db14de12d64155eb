package deepgram

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/koscakluka/lakshmi-path/core/texttospeech/deepgram"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

var (
	audioBytes, _ = meter.Int64Counter("deepgram.speak.audio_bytes",
		metric.WithDescription("Synthesized audio received from Deepgram"),
		metric.WithUnit("By"))
	voiceFallbacks, _ = meter.Int64Counter("deepgram.voice.fallbacks",
		metric.WithDescription("Utterances spoken with the default voice because no voice matched the locale"))
)
