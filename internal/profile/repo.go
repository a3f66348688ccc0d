package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velimirb/portfolio-backend/internal/telemetry/tracing"
)

var ErrProfileNotSet = errors.New("profile not set")

var _ profileRepo = (*Repo)(nil)

// Repo keeps the profile as a single row with a fixed id. Get before the
// first Set returns ErrProfileNotSet.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context) (*Profile, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profileRepo.Get")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT name, headline, bio, avatar_url, social, contact_email, location, cv_url, updated_at FROM profile WHERE id = 1;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrProfileNotSet
	}

	var p Profile
	var socialJson []byte
	if err := rows.Scan(
		&p.Name, &p.Headline, &p.Bio, &p.AvatarURL, &socialJson,
		&p.ContactEmail, &p.Location, &p.CvURL, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(socialJson) > 0 {
		if err := json.Unmarshal(socialJson, &p.Social); err != nil {
			return nil, fmt.Errorf("unmarshal social links: %w", err)
		}
	}

	return &p, nil
}

func (r *Repo) Set(ctx context.Context, profile *Profile) error {
	profile.UpdatedAt = time.Now()

	socialJson, err := json.Marshal(profile.Social)
	if err != nil {
		return fmt.Errorf("marshal social links: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO profile
			(id, name, headline, bio, avatar_url, social, contact_email, location, cv_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = $1, headline = $2, bio = $3, avatar_url = $4, social = $5,
			contact_email = $6, location = $7, cv_url = $8, updated_at = $9;`,
		profile.Name, profile.Headline, profile.Bio, profile.AvatarURL, socialJson,
		profile.ContactEmail, profile.Location, profile.CvURL, profile.UpdatedAt,
	)
	return err
}
