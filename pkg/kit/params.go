package kit

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// WithIntParam parses the named URL param as an int before calling next.
// A value that matched the route pattern but does not fit in an int is a 404.
func WithIntParam(name string, next func(http.ResponseWriter, *http.Request, int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, name))
		if err != nil {
			NotFound(w, r)
			return
		}
		next(w, r, id)
	}
}
