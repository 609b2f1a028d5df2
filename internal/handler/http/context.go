package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-micro-blog/models"
)

// ctxKey is a private type so context values set by this package cannot
// collide with keys from other packages.
type ctxKey int

const userCtxKey ctxKey = iota

// withUser returns a copy of ctx carrying the resolved request identity.
func withUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// userFrom extracts the resolved request identity, if any, from the request
// context. The second return value reports whether an identity was attached.
func userFrom(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(userCtxKey).(models.User)
	return user, ok
}
