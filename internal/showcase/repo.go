package showcase

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velimirb/portfolio-backend/internal/telemetry/tracing"
)

var _ showcaseRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddClient(ctx context.Context, client *Client) error {
	if client.Name == "" {
		return ErrRequiredFieldEmpty
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO client (name, logo_url, website) VALUES ($1, $2, $3) RETURNING id;`,
		client.Name, client.LogoURL, client.Website,
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
			client.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert client")
}

func (r *Repo) UpdateClient(ctx context.Context, client *Client) error {
	if client.Name == "" {
		return ErrRequiredFieldEmpty
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE client SET name = $1, logo_url = $2, website = $3 WHERE id = $4`,
		client.Name, client.LogoURL, client.Website, client.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *Repo) DeleteClient(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM client WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *Repo) Clients(ctx context.Context) ([]*Client, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "showcaseRepo.Clients")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM client ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var clients []*Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Website); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, nil
}

func (r *Repo) AddTestimonial(ctx context.Context, testimonial *Testimonial) error {
	if testimonial.Author == "" || testimonial.Quote == "" {
		return ErrRequiredFieldEmpty
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO testimonial (author, role, quote, avatar_url) VALUES ($1, $2, $3, $4) RETURNING id;`,
		testimonial.Author, testimonial.Role, testimonial.Quote, testimonial.AvatarURL,
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
			testimonial.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert testimonial")
}

func (r *Repo) UpdateTestimonial(ctx context.Context, testimonial *Testimonial) error {
	if testimonial.Author == "" || testimonial.Quote == "" {
		return ErrRequiredFieldEmpty
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE testimonial SET author = $1, role = $2, quote = $3, avatar_url = $4 WHERE id = $5`,
		testimonial.Author, testimonial.Role, testimonial.Quote, testimonial.AvatarURL, testimonial.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func (r *Repo) DeleteTestimonial(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonial WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func (r *Repo) Testimonials(ctx context.Context) ([]*Testimonial, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "showcaseRepo.Testimonials")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM testimonial ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var testimonials []*Testimonial
	for rows.Next() {
		var tm Testimonial
		if err := rows.Scan(&tm.ID, &tm.Author, &tm.Role, &tm.Quote, &tm.AvatarURL); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, &tm)
	}
	return testimonials, nil
}

func (r *Repo) AddAffiliate(ctx context.Context, affiliate *Affiliate) error {
	if affiliate.Name == "" || affiliate.URL == "" {
		return ErrRequiredFieldEmpty
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO affiliate (name, url, banner_url) VALUES ($1, $2, $3) RETURNING id;`,
		affiliate.Name, affiliate.URL, affiliate.BannerURL,
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
			affiliate.ID = id
			return nil
		}
	}

	return errors.New("unexpected error, failed to insert affiliate")
}

func (r *Repo) UpdateAffiliate(ctx context.Context, affiliate *Affiliate) error {
	if affiliate.Name == "" || affiliate.URL == "" {
		return ErrRequiredFieldEmpty
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE affiliate SET name = $1, url = $2, banner_url = $3 WHERE id = $4`,
		affiliate.Name, affiliate.URL, affiliate.BannerURL, affiliate.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAffiliateNotFound
	}
	return nil
}

func (r *Repo) DeleteAffiliate(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM affiliate WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAffiliateNotFound
	}
	return nil
}

func (r *Repo) Affiliates(ctx context.Context) ([]*Affiliate, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "showcaseRepo.Affiliates")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT * FROM affiliate ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var affiliates []*Affiliate
	for rows.Next() {
		var a Affiliate
		if err := rows.Scan(&a.ID, &a.Name, &a.URL, &a.BannerURL); err != nil {
			return nil, err
		}
		affiliates = append(affiliates, &a)
	}
	return affiliates, nil
}
