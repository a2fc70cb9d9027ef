package tracker

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type trackerCtxKey int

const (
	RunIdStrKey   string        = "run_id"
	runUUIDCtxKey trackerCtxKey = iota
)

func ContextWithRunUUID(ctx context.Context, uuidVal uuid.UUID) context.Context {
	return context.WithValue(ctx, runUUIDCtxKey, uuidVal)
}

func RunUUIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	uuidVal, ok := ctx.Value(runUUIDCtxKey).(uuid.UUID)
	return uuidVal, ok
}

// StartRun tags ctx and its logger with a fresh run uuid.
// Every log line of one invocation carries the same run_id.
func StartRun(ctx context.Context, log zerolog.Logger) context.Context {
	uuidVal := uuid.New()
	ctx = ContextWithRunUUID(ctx, uuidVal)
	return log.With().Str(RunIdStrKey, uuidVal.String()).Logger().WithContext(ctx)
}
