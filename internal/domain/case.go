package domain

import "time"

// CaseStatus is the lifecycle status of a case. New-Case, In-Progress and
// Completed are derived from service completion; Rejected and Approved are
// only ever set explicitly by an operator.
type CaseStatus string

const (
	StatusNewCase    CaseStatus = "New-Case"
	StatusInProgress CaseStatus = "In-Progress"
	StatusCompleted  CaseStatus = "Completed"
	StatusRejected   CaseStatus = "Rejected"
	StatusApproved   CaseStatus = "Approved"
)

// Manual reports whether s is one of the operator-only statuses that the
// completion-derived suggestion must never overwrite.
func (s CaseStatus) Manual() bool {
	return s == StatusRejected || s == StatusApproved
}

// CaseService is one checklist entry embedded in a case. Legacy rows may
// lack an ID, in which case the lowercased name identifies the entry.
type CaseService struct {
	ID                   string `json:"id,omitempty"`
	Name                 string `json:"name"`
	Status               string `json:"status"`
	Remarks              string `json:"remarks,omitempty"`
	CompletionPercentage int    `json:"completionPercentage"`
}

// ServiceStatusCompleted is the only service status that counts toward the
// overall completion percentage. The match is case-sensitive.
const ServiceStatusCompleted = "Completed"

// AssignedUserRef is a denormalized snapshot of a user at assignment time.
type AssignedUserRef struct {
	ID             string `json:"_id"`
	ExternalUserID string `json:"userId,omitempty"`
	Name           string `json:"name"`
}

type Case struct {
	ID                          string            `json:"_id"`
	SrNo                        string            `json:"srNo,omitempty"`
	OwnerName                   string            `json:"ownerName,omitempty"`
	ClientName                  string            `json:"clientName,omitempty"`
	UnitName                    string            `json:"unitName,omitempty"`
	FranchiseAddress            string            `json:"franchiseAddress,omitempty"`
	Promoters                   []string          `json:"promoters,omitempty"`
	AuthorizedPerson            string            `json:"authorizedPerson,omitempty"`
	Services                    []CaseService     `json:"services"`
	Status                      CaseStatus        `json:"status"`
	OverallStatus               string            `json:"overallStatus"`
	OverallCompletionPercentage int               `json:"overallCompletionPercentage"`
	AssignedUsers               []AssignedUserRef `json:"assignedUsers"`
	ReasonForStatus             string            `json:"reasonForStatus,omitempty"`
	CreatedAt                   time.Time         `json:"createdAt"`
	LastUpdate                  time.Time         `json:"lastUpdate"`
}

// FirstUpdate reports whether the case has never been updated since
// creation. Service additions are only newsworthy on the first update.
func (c *Case) FirstUpdate() bool {
	return c.LastUpdate.Equal(c.CreatedAt)
}
