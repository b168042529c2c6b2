// Package relay provides interfaces for types to be in compliance with.
package relay

import (
	"context"

	"github.com/nathdadu26/viralbox-uploader-bot/internal/transport/telegram"
)

// Processor defines a set of methods for types implementing Processor.
// Every method runs one inbound event to a terminal state and converts
// all failures into a user-facing reply; nothing propagates to callers.
type Processor interface {
	Start(ctx context.Context, msg *telegram.Message)
	SetAPIKey(ctx context.Context, msg *telegram.Message, args []string)
	Upload(ctx context.Context, msg *telegram.Message)
}
