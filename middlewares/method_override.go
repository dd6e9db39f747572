package middlewares

import (
	"net/http"
	"strings"
)

// MethodOverride lets plain HTML forms reach the DELETE routes by
// POSTing a hidden _method field. Must wrap the engine, not sit inside
// it: gin has already routed by the time its own middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.PostFormValue("_method")) {
			case http.MethodDelete:
				r.Method = http.MethodDelete
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodPatch:
				r.Method = http.MethodPatch
			}
		}
		next.ServeHTTP(w, r)
	})
}
