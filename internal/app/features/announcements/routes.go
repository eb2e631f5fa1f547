package announcements

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a chi.Router with the announcement endpoints mounted.
//
// When mounted at /api/announcements:
//   - POST /api/announcements/check - check a selection result by NRP
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/check", h.check)
	return r
}
