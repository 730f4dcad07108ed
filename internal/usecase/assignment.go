package usecase

import (
	"context"
	"fmt"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/repository"
)

// AssignmentResolver turns raw assignment references into denormalized user
// snapshots via one batched directory lookup per call.
type AssignmentResolver struct {
	users repository.UserRepository
}

func NewAssignmentResolver(users repository.UserRepository) *AssignmentResolver {
	return &AssignmentResolver{users: users}
}

// Resolve maps every distinct input id to an AssignedUserRef, preserving
// first-appearance order. Ids missing from the directory degrade to a
// placeholder name instead of failing the mutation.
func (r *AssignmentResolver) Resolve(ctx context.Context, refs []domain.AssignedUserInput) ([]domain.AssignedUserRef, error) {
	ids := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if ref.ID == "" {
			continue
		}
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		ids = append(ids, ref.ID)
	}
	if len(ids) == 0 {
		return []domain.AssignedUserRef{}, nil
	}

	users, err := r.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assigned users: %w", err)
	}
	byID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	resolved := make([]domain.AssignedUserRef, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			resolved = append(resolved, domain.AssignedUserRef{
				ID:             u.ID,
				ExternalUserID: u.ExternalUserID,
				Name:           u.Name,
			})
			continue
		}
		resolved = append(resolved, domain.AssignedUserRef{
			ID:   id,
			Name: "User " + id,
		})
	}
	return resolved, nil
}
