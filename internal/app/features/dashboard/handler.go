// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"math"
	"net/http"

	complaintstore "github.com/hosteldesk/hosteldesk/internal/app/store/complaints"
	"github.com/hosteldesk/hosteldesk/internal/app/system/respond"
	"github.com/hosteldesk/hosteldesk/internal/app/system/timeouts"
	"github.com/hosteldesk/hosteldesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the dashboard statistics endpoint.
type Handler struct {
	complaints *complaintstore.Store
	log        *zap.Logger
}

// NewHandler constructs a dashboard Handler over the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		complaints: complaintstore.New(db),
		log:        logger,
	}
}

// Stats is the aggregate snapshot returned by GET /api/dashboard/stats.
type Stats struct {
	TotalComplaints      int64 `json:"totalComplaints"`
	PendingComplaints    int64 `json:"pendingComplaints"`
	InProgressComplaints int64 `json:"inProgressComplaints"`
	ResolvedComplaints   int64 `json:"resolvedComplaints"`
	ResolutionRate       int   `json:"resolutionRate"`
}

// Serve handles GET /api/dashboard/stats. Counts are taken fresh from the
// collection on every call; there is deliberately no caching, so the
// numbers always reflect the store at request time.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.compute(ctx)
	if err != nil {
		h.log.Error("dashboard stats failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch dashboard statistics")
		return
	}

	respond.JSON(w, http.StatusOK, stats)
}

func (h *Handler) compute(ctx context.Context) (Stats, error) {
	var (
		stats Stats
		err   error
	)

	if stats.TotalComplaints, err = h.complaints.Count(ctx, complaintstore.Filter{}); err != nil {
		return Stats{}, err
	}
	if stats.PendingComplaints, err = h.complaints.Count(ctx, complaintstore.Filter{Status: models.StatusPending}); err != nil {
		return Stats{}, err
	}
	if stats.InProgressComplaints, err = h.complaints.Count(ctx, complaintstore.Filter{Status: models.StatusInProgress}); err != nil {
		return Stats{}, err
	}
	if stats.ResolvedComplaints, err = h.complaints.Count(ctx, complaintstore.Filter{Status: models.StatusResolved}); err != nil {
		return Stats{}, err
	}

	stats.ResolutionRate = ResolutionRate(stats.ResolvedComplaints, stats.TotalComplaints)
	return stats, nil
}

// ResolutionRate is the percentage of complaints resolved, rounded to the
// nearest integer; an empty collection rates 0.
func ResolutionRate(resolved, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(resolved) / float64(total) * 100))
}
