package middleware

import (
	"context"
	"net/http"
)

type peerAddrKey struct{}

// PeerAddr records the connection's remote address before any middleware
// (chi's RealIP, for example) rewrites r.RemoteAddr from request headers.
// It must run first in the chain.
func PeerAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), peerAddrKey{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PeerAddrFromContext returns the address stored by PeerAddr.
func PeerAddrFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(peerAddrKey{}).(string)
	return addr, ok
}
