package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Finaxis002/FCOBackend/internal/domain"
)

func strPtr(s string) *string { return &s }

func statusPtr(s domain.CaseStatus) *domain.CaseStatus { return &s }

func baseCase() *domain.Case {
	return &domain.Case{
		ID:        "case-1",
		OwnerName: "Asha Verma",
		UnitName:  "Indore Unit",
		Status:    domain.StatusNewCase,
		Services: []domain.CaseService{
			{ID: "1", Name: "KYC", Status: "Pending"},
		},
		AssignedUsers: []domain.AssignedUserRef{
			{ID: "u1", Name: "Ravi"},
		},
	}
}

func TestDetectChanges_EmptyPayloadIsNoOp(t *testing.T) {
	changes := DetectChanges(baseCase(), &domain.UpdateCaseInput{})
	assert.Empty(t, changes)
}

func TestDetectChanges_ScalarField(t *testing.T) {
	in := &domain.UpdateCaseInput{OwnerName: strPtr("Meera Joshi")}

	changes := DetectChanges(baseCase(), in)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeField, changes[0].Kind)
	assert.Equal(t, `Field "ownerName" changed from "Asha Verma" to "Meera Joshi".`, changes[0].Message)
}

func TestDetectChanges_SameValueIsSilent(t *testing.T) {
	in := &domain.UpdateCaseInput{OwnerName: strPtr("Asha Verma")}
	assert.Empty(t, DetectChanges(baseCase(), in))
}

func TestDetectChanges_StatusSeparateFromFields(t *testing.T) {
	in := &domain.UpdateCaseInput{
		OwnerName: strPtr("Meera Joshi"),
		Status:    statusPtr(domain.StatusInProgress),
	}

	changes := DetectChanges(baseCase(), in)
	require.Len(t, changes, 2)
	assert.Equal(t, domain.ChangeField, changes[0].Kind)
	assert.Equal(t, domain.ChangeStatus, changes[1].Kind)
	assert.Equal(t, `Status changed from "New-Case" to "In-Progress".`, changes[1].Message)
}

func TestDetectChanges_ServiceStatus(t *testing.T) {
	in := &domain.UpdateCaseInput{
		Services: &[]domain.CaseService{
			{ID: "1", Name: "KYC", Status: "Completed"},
		},
	}

	changes := DetectChanges(baseCase(), in)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeServiceStatus, changes[0].Kind)
	assert.Equal(t, `Service "KYC" status changed from "Pending" to "Completed".`, changes[0].Message)
	assert.Equal(t, "1", changes[0].ServiceID)
	assert.Equal(t, "KYC", changes[0].ServiceName)
}

// Legacy rows have no service ids; matching falls back to the
// case-insensitive name.
func TestDetectChanges_ServiceMatchByName(t *testing.T) {
	old := baseCase()
	old.Services = []domain.CaseService{{Name: "kyc", Status: "Pending"}}

	in := &domain.UpdateCaseInput{
		Services: &[]domain.CaseService{{Name: "KYC", Status: "Completed"}},
	}

	changes := DetectChanges(old, in)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeServiceStatus, changes[0].Kind)
}

func TestDetectChanges_ServiceAdded(t *testing.T) {
	in := &domain.UpdateCaseInput{
		Services: &[]domain.CaseService{
			{ID: "1", Name: "KYC", Status: "Pending"},
			{ID: "2", Name: "GST Registration", Status: "Pending"},
		},
	}

	changes := DetectChanges(baseCase(), in)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeServiceAdded, changes[0].Kind)
	assert.Equal(t, `New service "GST Registration" added.`, changes[0].Message)
}

// Removed services are deliberately not reported as a change kind.
func TestDetectChanges_ServiceRemovalNotReported(t *testing.T) {
	in := &domain.UpdateCaseInput{Services: &[]domain.CaseService{}}
	assert.Empty(t, DetectChanges(baseCase(), in))
}

func TestDetectChanges_OmittedServicesLeaveUnchanged(t *testing.T) {
	// Omission means "leave unchanged", not "clear".
	changes := DetectChanges(baseCase(), &domain.UpdateCaseInput{})
	assert.Empty(t, changes)
}

func TestDetectChanges_UserCounts(t *testing.T) {
	in := &domain.UpdateCaseInput{
		AssignedUsers: &[]domain.AssignedUserInput{
			{ID: "u2"}, {ID: "u3"},
		},
	}

	changes := DetectChanges(baseCase(), in)
	require.Len(t, changes, 2)
	assert.Equal(t, domain.ChangeUserAdded, changes[0].Kind)
	assert.Equal(t, "2 user(s) assigned to the case.", changes[0].Message)
	assert.Equal(t, domain.ChangeUserRemoved, changes[1].Kind)
	assert.Equal(t, "1 user(s) removed from the case.", changes[1].Message)
}

func TestDetectChanges_Ordering(t *testing.T) {
	in := &domain.UpdateCaseInput{
		OwnerName: strPtr("Meera Joshi"),
		UnitName:  strPtr("Bhopal Unit"),
		Status:    statusPtr(domain.StatusInProgress),
		Services: &[]domain.CaseService{
			{ID: "1", Name: "KYC", Status: "Completed"},
			{ID: "2", Name: "GST Registration", Status: "Pending"},
		},
		AssignedUsers: &[]domain.AssignedUserInput{{ID: "u1"}, {ID: "u2"}},
	}

	changes := DetectChanges(baseCase(), in)
	kinds := make([]domain.ChangeKind, 0, len(changes))
	for _, c := range changes {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []domain.ChangeKind{
		domain.ChangeField,
		domain.ChangeField,
		domain.ChangeStatus,
		domain.ChangeServiceStatus,
		domain.ChangeServiceAdded,
		domain.ChangeUserAdded,
	}, kinds)
}

func TestFilterForNotification_Suppression(t *testing.T) {
	changes := []domain.ChangeRecord{
		{Kind: domain.ChangeField, Message: "field"},
		{Kind: domain.ChangeServiceAdded, Message: "added"},
		{Kind: domain.ChangeServiceStatus, Message: "status"},
	}

	// First update since creation: additions are newsworthy.
	first := FilterForNotification(changes, true)
	assert.Len(t, first, 3)

	// Routine edit: additions suppressed, everything else kept.
	later := FilterForNotification(changes, false)
	require.Len(t, later, 2)
	assert.Equal(t, domain.ChangeField, later[0].Kind)
	assert.Equal(t, domain.ChangeServiceStatus, later[1].Kind)
}
