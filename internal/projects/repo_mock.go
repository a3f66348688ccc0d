package projects

import (
	"context"
	"sync"
)

var _ projectsRepo = (*repoMock)(nil)

type repoMock struct {
	mutex    sync.Mutex
	projects map[int]*Project
	nextID   int
}

func newRepoMock() *repoMock {
	return &repoMock{
		projects: map[int]*Project{},
		nextID:   1,
	}
}

func (r *repoMock) Add(_ context.Context, project *Project) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if project.Title == "" {
		return ErrTitleEmpty
	}

	project.ID = r.nextID
	r.nextID++
	r.projects[project.ID] = project
	return nil
}

func (r *repoMock) Update(_ context.Context, project *Project) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if project.Title == "" {
		return ErrTitleEmpty
	}
	if _, ok := r.projects[project.ID]; !ok {
		return ErrProjectNotFound
	}

	r.projects[project.ID] = project
	return nil
}

func (r *repoMock) Delete(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.projects[id]; !ok {
		return ErrProjectNotFound
	}

	delete(r.projects, id)
	return nil
}

func (r *repoMock) Get(_ context.Context, id int) (*Project, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (r *repoMock) All(_ context.Context) ([]*Project, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var projects []*Project
	for id := r.nextID - 1; id >= 1; id-- {
		if project, ok := r.projects[id]; ok {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func (r *repoMock) Selected(_ context.Context) ([]*Project, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var projects []*Project
	for id := r.nextID - 1; id >= 1; id-- {
		if project, ok := r.projects[id]; ok && project.Selected {
			projects = append(projects, project)
		}
	}
	return projects, nil
}
