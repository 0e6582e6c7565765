package entity

// Step names a stage of the migration sequence
type Step string

const (
	StepResolveSource  Step = "resolve-source-repo"
	StepResolveDest    Step = "resolve-dest-repo"
	StepCopyLabels     Step = "copy-labels"
	StepCopyIssues     Step = "copy-issues"
	StepFetchProject   Step = "fetch-source-project"
	StepCopyProject    Step = "copy-project"
	StepAttachIssues   Step = "attach-issues"
	StepLinkRepository Step = "link-repository"
)

// Steps lists every stage in execution order
var Steps = []Step{
	StepResolveSource,
	StepResolveDest,
	StepCopyLabels,
	StepCopyIssues,
	StepFetchProject,
	StepCopyProject,
	StepAttachIssues,
	StepLinkRepository,
}

// StepStatus is the outcome of a single stage
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// StepRecord is one entry of the migration journal
type StepRecord struct {
	Step   Step       `json:"step"`
	Status StepStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
}

// MigrationReport summarizes what a run actually did
type MigrationReport struct {
	Journal       []StepRecord `json:"journal"`
	SourceRepo    RepoRef      `json:"source_repo"`
	DestRepo      RepoRef      `json:"dest_repo"`
	RepoCreated   bool         `json:"repo_created"`
	LabelsCreated int          `json:"labels_created"`
	LabelsSkipped int          `json:"labels_skipped"`
	IssueIDs      []string     `json:"issue_ids"`
	SourceProject *Project     `json:"source_project,omitempty"`
	CopiedProject *Project     `json:"copied_project,omitempty"`
	ItemsAttached int          `json:"items_attached"`
	RepoLinked    bool         `json:"repo_linked"`
}

// CompletedSteps returns the stages that finished successfully
func (r *MigrationReport) CompletedSteps() []Step {
	var steps []Step
	for _, record := range r.Journal {
		if record.Status == StepCompleted {
			steps = append(steps, record.Step)
		}
	}
	return steps
}

// FailedStep returns the stage that failed, if any
func (r *MigrationReport) FailedStep() (Step, bool) {
	for _, record := range r.Journal {
		if record.Status == StepFailed {
			return record.Step, true
		}
	}
	return "", false
}
