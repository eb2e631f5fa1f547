// Package requestid assigns each request an identifier for log correlation.
// Clients may supply their own via the X-Request-ID header; otherwise one is
// generated. The ID is echoed on the response and stored in the request
// context for handlers to include in error logs.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the request/response header carrying the request ID.
const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware ensures every request has an ID, echoing it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// From returns the request ID stored in ctx, or "" if none.
func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
