package domain

import "time"

// User is a directory record. Credentials and token verification live in
// the auth gateway, not here.
type User struct {
	ID             string    `json:"_id"`
	ExternalUserID string    `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Role           string    `json:"role,omitempty"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Admin is an administrator directory record. Admins receive a copy of
// every case notification.
type Admin struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Remark is one comment left on a service within a case.
type Remark struct {
	ID        string    `json:"_id"`
	CaseID    string    `json:"caseId"`
	ServiceID string    `json:"serviceId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Remark    string    `json:"remark"`
	CreatedAt time.Time `json:"createdAt"`
}

// CatalogService is an entry in the global service catalog from which case
// checklists are assembled.
type CatalogService struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
