package resume

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velimirb/portfolio-backend/internal/telemetry/tracing"
)

var _ resumeRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSkill(ctx context.Context, skill *Skill) error {
	if skill.Name == "" {
		return ErrNameEmpty
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO skill (name, level, icon, position) VALUES ($1, $2, $3, $4) RETURNING id;`,
		skill.Name, skill.Level, skill.Icon, skill.Position,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}

	if rows.Next() {
		var id int
		if err := rows.Scan(&id); err == nil {
			skill.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert skill")
}

func (r *Repo) UpdateSkill(ctx context.Context, skill *Skill) error {
	if skill.Name == "" {
		return ErrNameEmpty
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE skill SET name = $1, level = $2, icon = $3, position = $4 WHERE id = $5`,
		skill.Name, skill.Level, skill.Icon, skill.Position, skill.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *Repo) DeleteSkill(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skill WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *Repo) Skills(ctx context.Context) ([]*Skill, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resumeRepo.Skills")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM skill ORDER BY position, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2skills(rows)
}

func (r *Repo) AddExperience(ctx context.Context, experience *Experience) error {
	if experience.Company == "" {
		return ErrNameEmpty
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO experience (company, role, period, summary, position) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		experience.Company, experience.Role, experience.Period, experience.Summary, experience.Position,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}

	if rows.Next() {
		var id int
		if err := rows.Scan(&id); err == nil {
			experience.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert experience")
}

func (r *Repo) UpdateExperience(ctx context.Context, experience *Experience) error {
	if experience.Company == "" {
		return ErrNameEmpty
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE experience SET company = $1, role = $2, period = $3, summary = $4, position = $5 WHERE id = $6`,
		experience.Company, experience.Role, experience.Period, experience.Summary, experience.Position, experience.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExperienceNotFound
	}
	return nil
}

func (r *Repo) DeleteExperience(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExperienceNotFound
	}
	return nil
}

func (r *Repo) Experiences(ctx context.Context) ([]*Experience, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resumeRepo.Experiences")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM experience ORDER BY position, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2experiences(rows)
}

func (r *Repo) AddAward(ctx context.Context, award *Award) error {
	if award.Title == "" {
		return ErrNameEmpty
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO award (title, issuer, year, link) VALUES ($1, $2, $3, $4) RETURNING id;`,
		award.Title, award.Issuer, award.Year, award.Link,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}

	if rows.Next() {
		var id int
		if err := rows.Scan(&id); err == nil {
			award.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert award")
}

func (r *Repo) UpdateAward(ctx context.Context, award *Award) error {
	if award.Title == "" {
		return ErrNameEmpty
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE award SET title = $1, issuer = $2, year = $3, link = $4 WHERE id = $5`,
		award.Title, award.Issuer, award.Year, award.Link, award.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAwardNotFound
	}
	return nil
}

func (r *Repo) DeleteAward(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM award WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAwardNotFound
	}
	return nil
}

func (r *Repo) Awards(ctx context.Context) ([]*Award, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resumeRepo.Awards")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM award ORDER BY year DESC, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2awards(rows)
}

func rows2skills(rows pgx.Rows) ([]*Skill, error) {
	var skills []*Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Icon, &s.Position); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, nil
}

func rows2experiences(rows pgx.Rows) ([]*Experience, error) {
	var experiences []*Experience
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.Period, &e.Summary, &e.Position); err != nil {
			return nil, err
		}
		experiences = append(experiences, &e)
	}
	return experiences, nil
}

func rows2awards(rows pgx.Rows) ([]*Award, error) {
	var awards []*Award
	for rows.Next() {
		var a Award
		if err := rows.Scan(&a.ID, &a.Title, &a.Issuer, &a.Year, &a.Link); err != nil {
			return nil, err
		}
		awards = append(awards, &a)
	}
	return awards, nil
}
