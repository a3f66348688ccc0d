package resume

import (
	"context"
	"sort"
	"sync"
)

var _ resumeRepo = (*repoMock)(nil)

type repoMock struct {
	mutex       sync.Mutex
	skills      map[int]*Skill
	experiences map[int]*Experience
	awards      map[int]*Award
	nextID      int
}

func newRepoMock() *repoMock {
	return &repoMock{
		skills:      map[int]*Skill{},
		experiences: map[int]*Experience{},
		awards:      map[int]*Award{},
		nextID:      1,
	}
}

func (r *repoMock) AddSkill(_ context.Context, skill *Skill) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if skill.Name == "" {
		return ErrNameEmpty
	}
	skill.ID = r.nextID
	r.nextID++
	r.skills[skill.ID] = skill
	return nil
}

func (r *repoMock) UpdateSkill(_ context.Context, skill *Skill) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.skills[skill.ID]; !ok {
		return ErrSkillNotFound
	}
	r.skills[skill.ID] = skill
	return nil
}

func (r *repoMock) DeleteSkill(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.skills[id]; !ok {
		return ErrSkillNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *repoMock) Skills(_ context.Context) ([]*Skill, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var skills []*Skill
	for _, s := range r.skills {
		skills = append(skills, s)
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Position != skills[j].Position {
			return skills[i].Position < skills[j].Position
		}
		return skills[i].ID < skills[j].ID
	})
	return skills, nil
}

func (r *repoMock) AddExperience(_ context.Context, experience *Experience) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if experience.Company == "" {
		return ErrNameEmpty
	}
	experience.ID = r.nextID
	r.nextID++
	r.experiences[experience.ID] = experience
	return nil
}

func (r *repoMock) UpdateExperience(_ context.Context, experience *Experience) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.experiences[experience.ID]; !ok {
		return ErrExperienceNotFound
	}
	r.experiences[experience.ID] = experience
	return nil
}

func (r *repoMock) DeleteExperience(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.experiences[id]; !ok {
		return ErrExperienceNotFound
	}
	delete(r.experiences, id)
	return nil
}

func (r *repoMock) Experiences(_ context.Context) ([]*Experience, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var experiences []*Experience
	for _, e := range r.experiences {
		experiences = append(experiences, e)
	}
	sort.Slice(experiences, func(i, j int) bool {
		if experiences[i].Position != experiences[j].Position {
			return experiences[i].Position < experiences[j].Position
		}
		return experiences[i].ID < experiences[j].ID
	})
	return experiences, nil
}

func (r *repoMock) AddAward(_ context.Context, award *Award) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if award.Title == "" {
		return ErrNameEmpty
	}
	award.ID = r.nextID
	r.nextID++
	r.awards[award.ID] = award
	return nil
}

func (r *repoMock) UpdateAward(_ context.Context, award *Award) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.awards[award.ID]; !ok {
		return ErrAwardNotFound
	}
	r.awards[award.ID] = award
	return nil
}

func (r *repoMock) DeleteAward(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.awards[id]; !ok {
		return ErrAwardNotFound
	}
	delete(r.awards, id)
	return nil
}

func (r *repoMock) Awards(_ context.Context) ([]*Award, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var awards []*Award
	for _, a := range r.awards {
		awards = append(awards, a)
	}
	sort.Slice(awards, func(i, j int) bool {
		if awards[i].Year != awards[j].Year {
			return awards[i].Year > awards[j].Year
		}
		return awards[i].ID < awards[j].ID
	})
	return awards, nil
}
