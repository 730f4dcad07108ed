package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Finaxis002/FCOBackend/internal/domain"
)

func TestAssignmentResolver_ResolvesKnownUsers(t *testing.T) {
	repo := &mockUserRepo{
		findByIDsFn: func(ctx context.Context, ids []string) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", ExternalUserID: "EMP-001", Name: "Ravi"},
				{ID: "u2", ExternalUserID: "EMP-002", Name: "Meera"},
			}, nil
		},
	}
	resolver := NewAssignmentResolver(repo)

	refs, err := resolver.Resolve(context.Background(), []domain.AssignedUserInput{
		{ID: "u1"}, {ID: "u2"},
	})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, domain.AssignedUserRef{ID: "u1", ExternalUserID: "EMP-001", Name: "Ravi"}, refs[0])
	assert.Equal(t, domain.AssignedUserRef{ID: "u2", ExternalUserID: "EMP-002", Name: "Meera"}, refs[1])
}

// An unresolved id degrades to a placeholder instead of failing the mutation.
func TestAssignmentResolver_PlaceholderForUnknown(t *testing.T) {
	repo := &mockUserRepo{
		findByIDsFn: func(ctx context.Context, ids []string) ([]*domain.User, error) {
			return []*domain.User{{ID: "u1", ExternalUserID: "EMP-001", Name: "Ravi"}}, nil
		},
	}
	resolver := NewAssignmentResolver(repo)

	refs, err := resolver.Resolve(context.Background(), []domain.AssignedUserInput{
		{ID: "u1"}, {ID: "ghost"},
	})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "User ghost", refs[1].Name)
	assert.Empty(t, refs[1].ExternalUserID)
}

// Every distinct input id yields exactly one output entry, even with zero
// directory matches.
func TestAssignmentResolver_NeverDropsInput(t *testing.T) {
	repo := &mockUserRepo{
		findByIDsFn: func(ctx context.Context, ids []string) ([]*domain.User, error) {
			return nil, nil
		},
	}
	resolver := NewAssignmentResolver(repo)

	refs, err := resolver.Resolve(context.Background(), []domain.AssignedUserInput{
		{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "c"},
	})
	require.NoError(t, err)
	assert.Len(t, refs, 3)
}

// The directory is hit once per call regardless of the number of refs.
func TestAssignmentResolver_SingleBatchLookup(t *testing.T) {
	repo := &mockUserRepo{}
	resolver := NewAssignmentResolver(repo)

	_, err := resolver.Resolve(context.Background(), []domain.AssignedUserInput{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestAssignmentResolver_EmptyInput(t *testing.T) {
	repo := &mockUserRepo{}
	resolver := NewAssignmentResolver(repo)

	refs, err := resolver.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.Equal(t, 0, repo.calls)
}
