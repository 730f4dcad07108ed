package domain

import "encoding/json"

// AssignedUserInput is the assignment reference as it arrives on the wire.
// Clients historically sent either a raw id string or a partial user object
// carrying "_id", so both shapes are accepted.
type AssignedUserInput struct {
	ID string
}

func (a *AssignedUserInput) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		a.ID = raw
		return nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.ID = obj.ID
	return nil
}

func (a AssignedUserInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ID)
}

// CreateCaseInput is the payload for case creation.
type CreateCaseInput struct {
	SrNo             string              `json:"srNo"`
	OwnerName        string              `json:"ownerName"`
	ClientName       string              `json:"clientName"`
	UnitName         string              `json:"unitName"`
	FranchiseAddress string              `json:"franchiseAddress"`
	Promoters        []string            `json:"promoters"`
	AuthorizedPerson string              `json:"authorizedPerson"`
	Services         []CaseService       `json:"services"`
	AssignedUsers    []AssignedUserInput `json:"assignedUsers"`
	ReasonForStatus  string              `json:"reasonForStatus"`
	Status           CaseStatus          `json:"status"`
}

// UpdateCaseInput is the partial payload for case updates. Nil means the
// field was omitted and the stored value is carried forward; for slices
// that is distinct from an explicit empty list, which clears.
type UpdateCaseInput struct {
	SrNo             *string              `json:"srNo"`
	OwnerName        *string              `json:"ownerName"`
	ClientName       *string              `json:"clientName"`
	UnitName         *string              `json:"unitName"`
	FranchiseAddress *string              `json:"franchiseAddress"`
	Promoters        *[]string            `json:"promoters"`
	AuthorizedPerson *string              `json:"authorizedPerson"`
	Services         *[]CaseService       `json:"services"`
	AssignedUsers    *[]AssignedUserInput `json:"assignedUsers"`
	ReasonForStatus  *string              `json:"reasonForStatus"`
	Status           *CaseStatus          `json:"status"`
}
