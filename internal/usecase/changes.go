package usecase

import (
	"fmt"
	"strings"

	"github.com/Finaxis002/FCOBackend/internal/domain"
)

// DetectChanges compares the stored case against a partial update payload
// and produces the ordered change log: scalar field changes first, then the
// status change, then service changes, then assignment changes. The order
// is a contract, it becomes the literal notification text. Omitted (nil)
// fields never produce a record.
func DetectChanges(old *domain.Case, in *domain.UpdateCaseInput) []domain.ChangeRecord {
	var changes []domain.ChangeRecord

	scalarFields := []struct {
		name string
		old  string
		new  *string
	}{
		{"srNo", old.SrNo, in.SrNo},
		{"ownerName", old.OwnerName, in.OwnerName},
		{"clientName", old.ClientName, in.ClientName},
		{"unitName", old.UnitName, in.UnitName},
		{"franchiseAddress", old.FranchiseAddress, in.FranchiseAddress},
		{"authorizedPerson", old.AuthorizedPerson, in.AuthorizedPerson},
		{"reasonForStatus", old.ReasonForStatus, in.ReasonForStatus},
	}
	for _, f := range scalarFields {
		if f.new == nil || *f.new == f.old {
			continue
		}
		changes = append(changes, domain.ChangeRecord{
			Kind:    domain.ChangeField,
			Message: fmt.Sprintf("Field %q changed from %q to %q.", f.name, f.old, *f.new),
		})
	}

	// Status is diffed apart from the generic loop; its enum semantics and
	// the downstream transition rule differ from plain fields.
	if in.Status != nil && *in.Status != old.Status {
		changes = append(changes, domain.ChangeRecord{
			Kind:    domain.ChangeStatus,
			Message: fmt.Sprintf("Status changed from %q to %q.", old.Status, *in.Status),
		})
	}

	if in.Services != nil {
		changes = append(changes, detectServiceChanges(old.Services, *in.Services)...)
	}

	if in.AssignedUsers != nil {
		changes = append(changes, detectUserChanges(old.AssignedUsers, *in.AssignedUsers)...)
	}

	return changes
}

// serviceKey matches services across versions by id when present, else by
// case-insensitive name. Legacy rows predate service ids, so the name
// fallback is load-bearing.
func serviceKey(s domain.CaseService) string {
	if s.ID != "" {
		return s.ID
	}
	return strings.ToLower(s.Name)
}

func detectServiceChanges(oldList, newList []domain.CaseService) []domain.ChangeRecord {
	oldByKey := make(map[string]domain.CaseService, len(oldList))
	for _, s := range oldList {
		oldByKey[serviceKey(s)] = s
	}

	var changes []domain.ChangeRecord
	for _, s := range newList {
		prev, ok := oldByKey[serviceKey(s)]
		if !ok {
			changes = append(changes, domain.ChangeRecord{
				Kind:        domain.ChangeServiceAdded,
				Message:     fmt.Sprintf("New service %q added.", s.Name),
				ServiceID:   s.ID,
				ServiceName: s.Name,
			})
			continue
		}
		if prev.Status != s.Status {
			changes = append(changes, domain.ChangeRecord{
				Kind:        domain.ChangeServiceStatus,
				Message:     fmt.Sprintf("Service %q status changed from %q to %q.", s.Name, prev.Status, s.Status),
				ServiceID:   s.ID,
				ServiceName: s.Name,
			})
		}
	}
	// Services present only in the old list are deliberately not reported.
	return changes
}

func detectUserChanges(oldRefs []domain.AssignedUserRef, newRefs []domain.AssignedUserInput) []domain.ChangeRecord {
	oldIDs := make(map[string]struct{}, len(oldRefs))
	for _, u := range oldRefs {
		oldIDs[u.ID] = struct{}{}
	}
	newIDs := make(map[string]struct{}, len(newRefs))
	for _, u := range newRefs {
		newIDs[u.ID] = struct{}{}
	}

	added, removed := 0, 0
	for id := range newIDs {
		if _, ok := oldIDs[id]; !ok {
			added++
		}
	}
	for id := range oldIDs {
		if _, ok := newIDs[id]; !ok {
			removed++
		}
	}

	var changes []domain.ChangeRecord
	if added > 0 {
		changes = append(changes, domain.ChangeRecord{
			Kind:    domain.ChangeUserAdded,
			Message: fmt.Sprintf("%d user(s) assigned to the case.", added),
		})
	}
	if removed > 0 {
		changes = append(changes, domain.ChangeRecord{
			Kind:    domain.ChangeUserRemoved,
			Message: fmt.Sprintf("%d user(s) removed from the case.", removed),
		})
	}
	return changes
}

// FilterForNotification applies the suppression rule: service-added records
// only make it into the outward notification on the case's very first
// update. They stay in the raw change log either way.
func FilterForNotification(changes []domain.ChangeRecord, firstUpdate bool) []domain.ChangeRecord {
	if firstUpdate {
		return changes
	}
	filtered := make([]domain.ChangeRecord, 0, len(changes))
	for _, c := range changes {
		if c.Kind == domain.ChangeServiceAdded {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}
