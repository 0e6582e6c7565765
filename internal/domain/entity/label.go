package entity

// Label represents a repository label copied by value
type Label struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// LabelCopyResult counts what happened while copying labels
type LabelCopyResult struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
}
