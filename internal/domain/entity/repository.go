package entity

// RepoRef identifies a GitHub repository and carries its resolved node ID
type RepoRef struct {
	Owner  string `json:"owner"`
	Name   string `json:"name"`
	NodeID string `json:"node_id,omitempty"`

	// Created is set when the repository was created during this run
	Created bool `json:"created,omitempty"`
}

// FullName returns owner/name
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Name
}

// IsResolved returns true once the node ID is known
func (r RepoRef) IsResolved() bool {
	return r.NodeID != ""
}
