package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignedUserInput_UnmarshalMixedShapes(t *testing.T) {
	var in UpdateCaseInput
	payload := `{"assignedUsers": ["u1", {"_id": "u2", "name": "Asha"}, "u3"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	require.NotNil(t, in.AssignedUsers)
	require.Len(t, *in.AssignedUsers, 3)
	assert.Equal(t, "u1", (*in.AssignedUsers)[0].ID)
	assert.Equal(t, "u2", (*in.AssignedUsers)[1].ID)
	assert.Equal(t, "u3", (*in.AssignedUsers)[2].ID)
}

func TestAssignedUserInput_RejectsMalformed(t *testing.T) {
	var a AssignedUserInput
	assert.Error(t, json.Unmarshal([]byte(`42`), &a))
}

func TestUpdateCaseInput_OmittedVersusEmpty(t *testing.T) {
	var omitted UpdateCaseInput
	require.NoError(t, json.Unmarshal([]byte(`{}`), &omitted))
	assert.Nil(t, omitted.AssignedUsers)
	assert.Nil(t, omitted.Services)

	var cleared UpdateCaseInput
	require.NoError(t, json.Unmarshal([]byte(`{"assignedUsers": [], "services": []}`), &cleared))
	require.NotNil(t, cleared.AssignedUsers)
	assert.Empty(t, *cleared.AssignedUsers)
	require.NotNil(t, cleared.Services)
	assert.Empty(t, *cleared.Services)
}

func TestCase_FirstUpdate(t *testing.T) {
	c := Case{}
	assert.True(t, c.FirstUpdate())
}
