//go:build testauth

package middleware

import "net/http"

// StaticUser authenticates every request as userID without looking at any
// token. It only exists in binaries built with -tags testauth.
func StaticUser(userID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
