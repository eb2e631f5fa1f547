// Package announcements provides the staff selection result check endpoint.
//
// Applicants submit their NRP (student registration number) and receive a
// passed or failed result. Passed results reveal the applicant's name and
// assigned codename.
package announcements

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/stratalinks/internal/app/store/announcement"
	"github.com/dalemusser/stratalinks/internal/app/system/jsonutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// FailedName is the placeholder name returned when the NRP has no matching
// passed announcement.
const FailedName = "Peserta Seleksi Staff Muda JMMI ITS 2026"

// maxNRPLength bounds accepted registration numbers.
const maxNRPLength = 20

// Handler provides the announcement check handlers.
type Handler struct {
	store  *announcement.Store
	logger *zap.Logger
}

// NewHandler creates a new announcements Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		store:  announcement.New(db),
		logger: logger,
	}
}

// CheckRequest is the body for POST /check.
type CheckRequest struct {
	NRP string `json:"nrp"`
}

// CheckResult reports the selection outcome for one NRP.
type CheckResult struct {
	Status   string `json:"status"` // "passed" or "failed"
	Name     string `json:"name"`
	Codename string `json:"codename,omitempty"`
}

// validNRP reports whether the NRP is all digits and within length bounds.
func validNRP(nrp string) bool {
	if nrp == "" || len(nrp) > maxNRPLength {
		return false
	}
	return strings.IndexFunc(nrp, func(r rune) bool {
		return r < '0' || r > '9'
	}) < 0
}

// check handles POST /check. An unknown NRP is a failed result, not an
// error: the endpoint answers "did this applicant pass", and absence means
// no. The first passed lookup for an NRP stamps its viewed_at.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var in CheckRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	if in.NRP == "" {
		jsonutil.BadRequest(w, "NRP is required")
		return
	}
	if !validNRP(in.NRP) {
		jsonutil.BadRequest(w, "Invalid NRP format")
		return
	}

	ann, err := h.store.GetByNRP(r.Context(), in.NRP)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.OK(w, "Selection result retrieved", CheckResult{
				Status: "failed",
				Name:   FailedName,
			})
			return
		}
		h.logger.Error("announcement lookup failed", zap.Error(err))
		jsonutil.InternalError(w, "Internal server error")
		return
	}

	if err := h.store.MarkViewed(r.Context(), ann.ID); err != nil {
		// The applicant still gets their result; only the view stamp is lost.
		h.logger.Warn("failed to mark announcement viewed",
			zap.String("nrp", ann.NRP),
			zap.Error(err),
		)
	}

	jsonutil.OK(w, "Selection result retrieved", CheckResult{
		Status:   "passed",
		Name:     ann.Name,
		Codename: ann.Codename,
	})
}
