package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Finaxis002/FCOBackend/internal/domain"
)

func TestComputeCompletion_EmptyChecklist(t *testing.T) {
	pct, status := ComputeCompletion(nil)
	assert.Equal(t, 50, pct)
	assert.Equal(t, domain.StatusNewCase, status)

	pct, status = ComputeCompletion([]domain.CaseService{})
	assert.Equal(t, 50, pct)
	assert.Equal(t, domain.StatusNewCase, status)
}

func TestComputeCompletion_AllCompleted(t *testing.T) {
	services := []domain.CaseService{
		{ID: "1", Name: "KYC", Status: "Completed"},
		{ID: "2", Name: "GST Registration", Status: "Completed"},
	}

	pct, status := ComputeCompletion(services)
	assert.Equal(t, 100, pct)
	assert.Equal(t, domain.StatusCompleted, status)
}

func TestComputeCompletion_PartiallyCompleted(t *testing.T) {
	services := []domain.CaseService{
		{ID: "1", Name: "KYC", Status: "Completed"},
		{ID: "2", Name: "GST Registration", Status: "Pending"},
	}

	pct, status := ComputeCompletion(services)
	assert.Equal(t, 75, pct)
	assert.Equal(t, domain.StatusInProgress, status)
}

func TestComputeCompletion_NoneCompleted(t *testing.T) {
	services := []domain.CaseService{
		{ID: "1", Name: "KYC", Status: "Pending"},
		{ID: "2", Name: "GST Registration", Status: "To-be-Started"},
	}

	pct, status := ComputeCompletion(services)
	assert.Equal(t, 50, pct)
	assert.Equal(t, domain.StatusNewCase, status)
}

// The completed match is case-sensitive: only the exact "Completed" status
// counts toward the percentage.
func TestComputeCompletion_CaseSensitiveMatch(t *testing.T) {
	services := []domain.CaseService{
		{ID: "1", Name: "KYC", Status: "completed"},
	}

	pct, status := ComputeCompletion(services)
	assert.Equal(t, 50, pct)
	assert.Equal(t, domain.StatusNewCase, status)
}

func TestComputeCompletion_PercentageBounds(t *testing.T) {
	lists := [][]domain.CaseService{
		nil,
		{{Name: "a", Status: "Pending"}},
		{{Name: "a", Status: "Completed"}},
		{{Name: "a", Status: "Completed"}, {Name: "b", Status: "Completed"}, {Name: "c", Status: "Pending"}},
	}
	for _, services := range lists {
		pct, _ := ComputeCompletion(services)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}

// Same input must always yield the same output.
func TestComputeCompletion_Deterministic(t *testing.T) {
	services := []domain.CaseService{
		{ID: "1", Name: "KYC", Status: "Completed"},
		{ID: "2", Name: "Trademark", Status: "In-Progress"},
		{ID: "3", Name: "FSSAI License", Status: "Pending"},
	}

	firstPct, firstStatus := ComputeCompletion(services)
	for i := 0; i < 10; i++ {
		pct, status := ComputeCompletion(services)
		assert.Equal(t, firstPct, pct)
		assert.Equal(t, firstStatus, status)
	}
}
