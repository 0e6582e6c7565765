package entity

// Issue represents a GitHub issue as read from the source repository
type Issue struct {
	Number        int      `json:"number"`
	Title         string   `json:"title"`
	Body          string   `json:"body,omitempty"`
	Labels        []string `json:"labels,omitempty"`
	Milestone     *int     `json:"milestone,omitempty"`
	IsPullRequest bool     `json:"is_pull_request,omitempty"`
}

// NewIssue describes an issue to create in the destination repository
type NewIssue struct {
	Title     string
	Body      string
	Labels    []string
	Milestone *int
}

// ToNewIssue copies the writable fields of a source issue
func (i *Issue) ToNewIssue() NewIssue {
	labels := make([]string, len(i.Labels))
	copy(labels, i.Labels)
	return NewIssue{
		Title:     i.Title,
		Body:      i.Body,
		Labels:    labels,
		Milestone: i.Milestone,
	}
}

// IssueListOptions filters source issue listing
type IssueListOptions struct {
	State               IssueState
	IncludePullRequests bool
}
