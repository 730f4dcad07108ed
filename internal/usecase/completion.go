package usecase

import (
	"math"

	"github.com/Finaxis002/FCOBackend/internal/domain"
)

// ComputeCompletion derives the overall completion percentage and the
// suggested case status from the checklist. Creation itself is worth 50
// points; completed services share the remaining 50. An empty checklist is
// half-credited by product convention. Pure and deterministic; the stored
// percentage is always recomputed here, never accepted from a caller.
func ComputeCompletion(services []domain.CaseService) (int, domain.CaseStatus) {
	if len(services) == 0 {
		return 50, domain.StatusNewCase
	}

	completed := 0
	for _, s := range services {
		if s.Status == domain.ServiceStatusCompleted {
			completed++
		}
	}

	pct := 50 + float64(completed)*50/float64(len(services))
	percentage := int(math.Round(math.Min(pct, 100)))

	switch {
	case completed == len(services):
		return percentage, domain.StatusCompleted
	case completed > 0:
		return percentage, domain.StatusInProgress
	default:
		return percentage, domain.StatusNewCase
	}
}
