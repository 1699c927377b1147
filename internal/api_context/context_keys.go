package api_context

import (
	"context"

	"github.com/edustream/videos-ms-go/internal/uuid"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	UIDKey        ctxKey = "uid"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

// UIDFromContext returns the opaque public video identifier carried by the
// unauthenticated lookup routes.
func UIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UIDKey).(string)
	return uid, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
