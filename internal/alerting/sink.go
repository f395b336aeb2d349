package alerting

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSink writes notification intents to the log. It stands in for real
// delivery transports (push, e-mail), which are not part of this backend.
type LogSink struct {
	Logger zerolog.Logger
}

var _ Sink = LogSink{}

func (s LogSink) Emit(_ context.Context, intent Intent) error {
	event := s.Logger.Info().
		Str("level", string(intent.Level())).
		Str("recipient", intent.Recipient().String())

	switch alert := intent.(type) {
	case WarningAlert:
		event = event.Str("category", alert.Category).Int64("percentage", alert.Percentage)
	case CriticalAlert:
		event = event.Str("category", alert.Category).Int64("percentage", alert.Percentage)
	case ExceededAlert:
		event = event.Str("category", alert.Category).Int64("percentage", alert.Percentage).Str("overage", alert.Overage.String())
	}

	event.Msg("budget alert")
	return nil
}
