package entity

// Project is an organization-level ProjectsV2 board
type Project struct {
	OrganizationID string `json:"organization_id,omitempty"`
	ID             string `json:"id"`
	Number         int    `json:"number,omitempty"`
	Title          string `json:"title"`
	ItemCount      int    `json:"item_count"`
}

// ProjectCopyRequest describes a copyProjectV2 call
type ProjectCopyRequest struct {
	OwnerID            string
	ProjectID          string
	Title              string
	IncludeDraftIssues bool
}
