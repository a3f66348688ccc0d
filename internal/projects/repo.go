package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/velimirb/portfolio-backend/internal/telemetry/tracing"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTitleEmpty      = errors.New("project title empty")
)

var _ projectsRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, project *Project) error {
	if project.Title == "" {
		return ErrTitleEmpty
	}

	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	thumbnailJson, err := json.Marshal(project.Thumbnail)
	if err != nil {
		return fmt.Errorf("marshal thumbnail: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO project
			(title, date, categories, description, task, role, client, category_year,
			live_site, thumbnail, gallery, selected, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id;`,
		project.Title, project.Date, project.Categories, project.Description,
		project.Task, project.Role, project.Client, project.CategoryYear,
		project.LiveSite, thumbnailJson, project.Gallery, project.Selected,
		project.CreatedAt, project.UpdatedAt,
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
			project.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert project")
}

func (r *Repo) Update(ctx context.Context, project *Project) error {
	if project.Title == "" {
		return ErrTitleEmpty
	}

	thumbnailJson, err := json.Marshal(project.Thumbnail)
	if err != nil {
		return fmt.Errorf("marshal thumbnail: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE project SET
			title = $1, date = $2, categories = $3, description = $4, task = $5,
			role = $6, client = $7, category_year = $8, live_site = $9,
			thumbnail = $10, gallery = $11, selected = $12, updated_at = $13
		WHERE id = $14`,
		project.Title, project.Date, project.Categories, project.Description,
		project.Task, project.Role, project.Client, project.CategoryYear,
		project.LiveSite, thumbnailJson, project.Gallery, project.Selected,
		time.Now(), project.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM project WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (*Project, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "projectsRepo.Get")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM project WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	projects, err := r.rows2projects(rows)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrProjectNotFound
	}
	return projects[0], nil
}

func (r *Repo) All(ctx context.Context) ([]*Project, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "projectsRepo.All")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM project ORDER BY id DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2projects(rows)
}

// Selected returns the projects pinned to the landing page
func (r *Repo) Selected(ctx context.Context) ([]*Project, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "projectsRepo.Selected")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM project WHERE selected ORDER BY id DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2projects(rows)
}

func (r *Repo) rows2projects(rows pgx.Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		var p Project
		var thumbnailJson []byte
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Date, &p.Categories, &p.Description, &p.Task,
			&p.Role, &p.Client, &p.CategoryYear, &p.LiveSite, &thumbnailJson,
			&p.Gallery, &p.Selected, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if len(thumbnailJson) > 0 {
			if err := json.Unmarshal(thumbnailJson, &p.Thumbnail); err != nil {
				return nil, fmt.Errorf("unmarshal thumbnail: %w", err)
			}
		}
		projects = append(projects, &p)
	}
	return projects, nil
}
