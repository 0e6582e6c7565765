package service

import (
	"context"
	"errors"
	"fmt"

	"github-migrator/internal/domain/entity"
)

// fakeGitHub is an in-memory GitHubRepository that records every call
type fakeGitHub struct {
	repos    map[string]entity.RepoRef
	labels   map[string][]entity.Label
	issues   map[string][]*entity.Issue
	orgIDs   map[string]string
	projects map[string]*entity.Project

	created      map[string][]entity.NewIssue
	copies       []entity.ProjectCopyRequest
	projectItems map[string][]string
	links        map[string]string

	calls  []string
	nextID int

	// failures keyed by call name, e.g. "CreateIssue"; failAfter lets that
	// many calls succeed first
	failures  map[string]error
	failAfter map[string]int
}

func newFakeGitHub() *fakeGitHub {
	return &fakeGitHub{
		repos:        map[string]entity.RepoRef{},
		labels:       map[string][]entity.Label{},
		issues:       map[string][]*entity.Issue{},
		orgIDs:       map[string]string{},
		projects:     map[string]*entity.Project{},
		created:      map[string][]entity.NewIssue{},
		projectItems: map[string][]string{},
		links:        map[string]string{},
		failures:     map[string]error{},
		failAfter:    map[string]int{},
	}
}

func notFoundErr(what string) error {
	return &entity.APIError{Op: what, Kind: entity.KindNotFound, StatusCode: 404, Err: errors.New("Not Found")}
}

func (f *fakeGitHub) record(call string) error {
	f.calls = append(f.calls, call)
	if err, ok := f.failures[call]; ok {
		if f.failAfter[call] > 0 {
			f.failAfter[call]--
			return nil
		}
		return err
	}
	return nil
}

func (f *fakeGitHub) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeGitHub) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s_%d", prefix, f.nextID)
}

func (f *fakeGitHub) addRepo(owner, name, nodeID string) {
	f.repos[owner+"/"+name] = entity.RepoRef{Owner: owner, Name: name, NodeID: nodeID}
}

func (f *fakeGitHub) GetRepository(ctx context.Context, owner, name string) (entity.RepoRef, error) {
	if err := f.record("GetRepository"); err != nil {
		return entity.RepoRef{}, err
	}
	ref, ok := f.repos[owner+"/"+name]
	if !ok {
		return entity.RepoRef{}, notFoundErr("get repository")
	}
	return ref, nil
}

func (f *fakeGitHub) CreateOrgRepository(ctx context.Context, org, name string) (entity.RepoRef, error) {
	if err := f.record("CreateOrgRepository"); err != nil {
		return entity.RepoRef{}, err
	}
	ref := entity.RepoRef{Owner: org, Name: name, NodeID: f.newID("R"), Created: true}
	f.repos[org+"/"+name] = entity.RepoRef{Owner: org, Name: name, NodeID: ref.NodeID}
	return ref, nil
}

func (f *fakeGitHub) ListLabels(ctx context.Context, owner, repo string) ([]entity.Label, error) {
	if err := f.record("ListLabels"); err != nil {
		return nil, err
	}
	return append([]entity.Label(nil), f.labels[owner+"/"+repo]...), nil
}

func (f *fakeGitHub) CreateLabel(ctx context.Context, owner, repo string, label entity.Label) error {
	if err := f.record("CreateLabel"); err != nil {
		return err
	}
	key := owner + "/" + repo
	for _, existing := range f.labels[key] {
		if existing.Name == label.Name {
			return &entity.APIError{Op: "create label", Kind: entity.KindConflict, StatusCode: 422, Err: errors.New("already_exists")}
		}
	}
	f.labels[key] = append(f.labels[key], label)
	return nil
}

func (f *fakeGitHub) ListIssues(ctx context.Context, owner, repo string, opts entity.IssueListOptions) ([]*entity.Issue, error) {
	if err := f.record("ListIssues"); err != nil {
		return nil, err
	}
	return f.issues[owner+"/"+repo], nil
}

func (f *fakeGitHub) CreateIssue(ctx context.Context, owner, repo string, issue entity.NewIssue) (string, error) {
	if err := f.record("CreateIssue"); err != nil {
		return "", err
	}
	key := owner + "/" + repo
	f.created[key] = append(f.created[key], issue)
	return f.newID("I"), nil
}

func (f *fakeGitHub) GetOrganizationID(ctx context.Context, login string) (string, error) {
	if err := f.record("GetOrganizationID"); err != nil {
		return "", err
	}
	id, ok := f.orgIDs[login]
	if !ok {
		return "", notFoundErr("get organization")
	}
	return id, nil
}

func (f *fakeGitHub) GetOrganizationProject(ctx context.Context, org string, number int) (*entity.Project, error) {
	if err := f.record("GetOrganizationProject"); err != nil {
		return nil, err
	}
	project, ok := f.projects[fmt.Sprintf("%s#%d", org, number)]
	if !ok {
		return nil, notFoundErr("get project")
	}
	return project, nil
}

func (f *fakeGitHub) CopyProject(ctx context.Context, req entity.ProjectCopyRequest) (*entity.Project, error) {
	if err := f.record("CopyProject"); err != nil {
		return nil, err
	}
	f.copies = append(f.copies, req)

	var source *entity.Project
	for _, p := range f.projects {
		if p.ID == req.ProjectID {
			source = p
		}
	}
	if source == nil {
		return nil, notFoundErr("copy project")
	}

	items := 0
	if req.IncludeDraftIssues {
		items = source.ItemCount
	}
	return &entity.Project{OrganizationID: req.OwnerID, ID: f.newID("PVT"), Title: req.Title, ItemCount: items}, nil
}

func (f *fakeGitHub) AddProjectItem(ctx context.Context, projectID, contentID string) error {
	if err := f.record("AddProjectItem"); err != nil {
		return err
	}
	f.projectItems[projectID] = append(f.projectItems[projectID], contentID)
	return nil
}

func (f *fakeGitHub) LinkProjectToRepository(ctx context.Context, projectID, repoID string) error {
	if err := f.record("LinkProjectToRepository"); err != nil {
		return err
	}
	f.links[projectID] = repoID
	return nil
}
