package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/repository"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

// NoChangesMessage is returned as the summary when an update produced no
// reportable changes after suppression.
const NoChangesMessage = "No significant changes detected"

// CaseUsecase orchestrates case mutations: diffing, assignment resolution,
// completion derivation, the status transition rule, the single persisted
// merge, and the notification fan-out.
type CaseUsecase struct {
	cases    repository.CaseRepository
	admins   repository.AdminRepository
	resolver *AssignmentResolver
	fanout   *Fanout
	logger   *zap.Logger
}

func NewCaseUsecase(
	cases repository.CaseRepository,
	admins repository.AdminRepository,
	resolver *AssignmentResolver,
	fanout *Fanout,
	logger *zap.Logger,
) *CaseUsecase {
	return &CaseUsecase{
		cases:    cases,
		admins:   admins,
		resolver: resolver,
		fanout:   fanout,
		logger:   logger,
	}
}

// UpdateCaseResult is the mutation response: the persisted case, the raw
// ordered change messages, and the outward summary (filtered messages, or
// the no-changes sentinel).
type UpdateCaseResult struct {
	Case    *domain.Case `json:"case"`
	Changes []string     `json:"changes"`
	Summary string       `json:"summary"`
}

func (uc *CaseUsecase) CreateCase(ctx context.Context, in *domain.CreateCaseInput) (*domain.Case, error) {
	if strings.TrimSpace(in.UnitName) == "" {
		return nil, xerrors.ErrUnitNameMissing
	}

	assigned, err := uc.resolver.Resolve(ctx, in.AssignedUsers)
	if err != nil {
		return nil, err
	}

	percentage, suggested := ComputeCompletion(in.Services)
	status := suggested
	if in.Status.Manual() {
		status = in.Status
	}

	now := time.Now()
	c := &domain.Case{
		ID:                          uuid.New().String(),
		SrNo:                        in.SrNo,
		OwnerName:                   in.OwnerName,
		ClientName:                  in.ClientName,
		UnitName:                    in.UnitName,
		FranchiseAddress:            in.FranchiseAddress,
		Promoters:                   in.Promoters,
		AuthorizedPerson:            in.AuthorizedPerson,
		Services:                    in.Services,
		Status:                      status,
		OverallStatus:               string(status),
		OverallCompletionPercentage: percentage,
		AssignedUsers:               assigned,
		ReasonForStatus:             in.ReasonForStatus,
		CreatedAt:                   now,
		LastUpdate:                  now,
	}
	if c.Promoters == nil {
		c.Promoters = []string{}
	}
	if c.Services == nil {
		c.Services = []domain.CaseService{}
	}

	created, err := uc.cases.CreateCase(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	uc.fanout.Notify(ctx,
		fmt.Sprintf("You have been assigned to a new case: %q.", created.UnitName),
		created.AssignedUsers, nil,
		NotificationContext{
			Type:     domain.NotificationCreation,
			CaseID:   created.ID,
			CaseName: created.UnitName,
		})

	return created, nil
}

func (uc *CaseUsecase) GetCase(ctx context.Context, id string) (*domain.Case, error) {
	return uc.cases.GetCaseByID(ctx, id)
}

func (uc *CaseUsecase) ListCases(ctx context.Context) ([]*domain.Case, error) {
	return uc.cases.ListCases(ctx)
}

// UpdateCase runs the full mutation pipeline. Steps, in order: load prior
// state, diff against the payload, resolve assignments when supplied,
// recompute completion over the effective service list, resolve the final
// status, persist one merged update, then fan notifications out. Nothing is
// mutated when the case does not exist, and no notification is attempted
// until the persist has succeeded.
func (uc *CaseUsecase) UpdateCase(ctx context.Context, id string, in *domain.UpdateCaseInput, actorID string) (*UpdateCaseResult, error) {
	old, err := uc.cases.GetCaseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := DetectChanges(old, in)
	firstUpdate := old.FirstUpdate()

	merged := *old
	if in.SrNo != nil {
		merged.SrNo = *in.SrNo
	}
	if in.OwnerName != nil {
		merged.OwnerName = *in.OwnerName
	}
	if in.ClientName != nil {
		merged.ClientName = *in.ClientName
	}
	if in.UnitName != nil {
		merged.UnitName = *in.UnitName
	}
	if in.FranchiseAddress != nil {
		merged.FranchiseAddress = *in.FranchiseAddress
	}
	if in.Promoters != nil {
		merged.Promoters = *in.Promoters
	}
	if in.AuthorizedPerson != nil {
		merged.AuthorizedPerson = *in.AuthorizedPerson
	}
	if in.ReasonForStatus != nil {
		merged.ReasonForStatus = *in.ReasonForStatus
	}
	if in.Services != nil {
		merged.Services = *in.Services
	}

	// An omitted assignment list carries the stored one forward; an explicit
	// empty list clears it.
	var addedUsers []domain.AssignedUserRef
	if in.AssignedUsers != nil {
		resolved, err := uc.resolver.Resolve(ctx, *in.AssignedUsers)
		if err != nil {
			return nil, err
		}
		oldIDs := make(map[string]struct{}, len(old.AssignedUsers))
		for _, u := range old.AssignedUsers {
			oldIDs[u.ID] = struct{}{}
		}
		for _, u := range resolved {
			if _, ok := oldIDs[u.ID]; !ok {
				addedUsers = append(addedUsers, u)
			}
		}
		merged.AssignedUsers = resolved
	}

	percentage, suggested := ComputeCompletion(merged.Services)
	merged.OverallCompletionPercentage = percentage
	merged.Status = resolveStatus(old.Status, in.Status, suggested)
	merged.OverallStatus = string(merged.Status)
	merged.LastUpdate = time.Now()

	updated, err := uc.cases.UpdateCase(ctx, &merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}

	filtered := FilterForNotification(changes, firstUpdate)
	uc.notifyUpdate(ctx, updated, filtered, addedUsers, actorID)

	summary := strings.Join(domain.Messages(filtered), " ")
	if summary == "" {
		summary = NoChangesMessage
	}

	return &UpdateCaseResult{
		Case:    updated,
		Changes: domain.Messages(changes),
		Summary: summary,
	}, nil
}

// resolveStatus applies the transition rule. Rejected and Approved are
// operator-only: they always win when explicit, and once stored they are
// never overwritten by derivation, even when the request carries an
// explicit status the derivation rejects. An explicit Completed or
// In-Progress is accepted only when it agrees with the suggestion.
// Finally, a stored Completed/In-Progress is preserved when the new
// suggestion would quietly unfinish the case (e.g. a checklist edit
// removed every service).
func resolveStatus(stored domain.CaseStatus, explicit *domain.CaseStatus, suggested domain.CaseStatus) domain.CaseStatus {
	final := suggested
	switch {
	case explicit != nil && explicit.Manual():
		return *explicit
	case explicit != nil && (*explicit == domain.StatusCompleted || *explicit == domain.StatusInProgress) && *explicit == suggested:
		final = *explicit
	case stored.Manual():
		return stored
	}

	if stored == domain.StatusCompleted || stored == domain.StatusInProgress {
		if suggested != domain.StatusCompleted && suggested != domain.StatusInProgress {
			return stored
		}
	}
	return final
}

func (uc *CaseUsecase) notifyUpdate(ctx context.Context, updated *domain.Case, filtered []domain.ChangeRecord, addedUsers []domain.AssignedUserRef, actorID string) {
	admins, err := uc.admins.ListAdmins(ctx)
	if err != nil {
		// Notifications are best effort; the mutation already succeeded.
		uc.logger.Error("failed to list admins for fan-out",
			zap.String("case_id", updated.ID), zap.Error(err))
		admins = nil
	}

	var general []string
	var serviceRecords []domain.ChangeRecord
	for _, c := range filtered {
		switch c.Kind {
		case domain.ChangeServiceAdded, domain.ChangeServiceStatus:
			serviceRecords = append(serviceRecords, c)
		default:
			general = append(general, c.Message)
		}
	}

	base := NotificationContext{
		Type:      domain.NotificationUpdate,
		CaseID:    updated.ID,
		CaseName:  updated.UnitName,
		CreatedBy: actorID,
	}

	uc.fanout.Notify(ctx, strings.Join(general, " "), updated.AssignedUsers, admins, base)

	for _, r := range serviceRecords {
		nc := base
		nc.ServiceID = r.ServiceID
		nc.ServiceName = r.ServiceName
		uc.fanout.Notify(ctx, r.Message, updated.AssignedUsers, admins, nc)
	}

	if len(addedUsers) > 0 {
		nc := base
		nc.Type = domain.NotificationAssign
		uc.fanout.Notify(ctx,
			fmt.Sprintf("You have been assigned to case %q.", updated.UnitName),
			addedUsers, nil, nc)
	}
}

func (uc *CaseUsecase) DeleteCase(ctx context.Context, id, actorName string) error {
	deleted, err := uc.cases.DeleteCase(ctx, id)
	if err != nil {
		return err
	}

	if actorName == "" {
		actorName = "Someone"
	}

	admins, err := uc.admins.ListAdmins(ctx)
	if err != nil {
		uc.logger.Error("failed to list admins for fan-out",
			zap.String("case_id", deleted.ID), zap.Error(err))
		admins = nil
	}

	uc.fanout.Notify(ctx,
		fmt.Sprintf("Case %q has been deleted by %s.", deleted.UnitName, actorName),
		deleted.AssignedUsers, admins,
		NotificationContext{
			Type:     domain.NotificationDeletion,
			CaseID:   deleted.ID,
			CaseName: deleted.UnitName,
		})

	return nil
}
