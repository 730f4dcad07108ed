package domain

// ChangeKind classifies one detected difference between case versions.
type ChangeKind string

const (
	ChangeField         ChangeKind = "field-change"
	ChangeStatus        ChangeKind = "status-change"
	ChangeServiceAdded  ChangeKind = "service-added"
	ChangeServiceStatus ChangeKind = "service-status"
	ChangeUserAdded     ChangeKind = "user-added"
	ChangeUserRemoved   ChangeKind = "user-removed"
)

// ChangeRecord is an ephemeral, human-readable description of one detected
// difference. It is built fresh on every update and never persisted; it only
// feeds notification text and the update response.
type ChangeRecord struct {
	Kind    ChangeKind `json:"kind"`
	Message string     `json:"message"`

	// Set only on service-added / service-status records so notifications
	// can carry the service context.
	ServiceID   string `json:"serviceId,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
}

// Messages flattens records into their message strings, preserving order.
func Messages(records []ChangeRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Message)
	}
	return out
}
