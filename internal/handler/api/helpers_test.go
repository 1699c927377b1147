package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/edustream/videos-ms-go/internal/api_context"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
	guuid "github.com/google/uuid"
)

var errTest = errors.New("boom")

func testID() msuuid.UUID {
	return msuuid.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
}

func withID(r *http.Request, id msuuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), api_context.IDKey, id)
	return r.WithContext(ctx)
}

func withUID(r *http.Request, uid string) *http.Request {
	ctx := context.WithValue(r.Context(), api_context.UIDKey, uid)
	return r.WithContext(ctx)
}
