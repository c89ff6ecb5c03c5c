package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devnetwork/devnetwork-service/internal/domain"
)

// ProfileRepository defines persistence access for developer profiles.
// Profiles behave as documents keyed by user id: reads are point lookups and
// writes replace the full record.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	GetWithOwner(ctx context.Context, userID string) (*domain.ProfileWithOwner, error)
	List(ctx context.Context) ([]domain.ProfileWithOwner, error)
	Delete(ctx context.Context, userID string) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (user_id, company, website, location, status, skills, bio, github_username, social, experience, education)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (user_id) DO UPDATE SET
            company=EXCLUDED.company,
            website=EXCLUDED.website,
            location=EXCLUDED.location,
            status=EXCLUDED.status,
            skills=EXCLUDED.skills,
            bio=EXCLUDED.bio,
            github_username=EXCLUDED.github_username,
            social=EXCLUDED.social,
            experience=EXCLUDED.experience,
            education=EXCLUDED.education,
            updated_at=NOW()
        RETURNING id, created_at, updated_at`

	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Experience == nil {
		profile.Experience = []domain.Experience{}
	}
	if profile.Education == nil {
		profile.Education = []domain.Education{}
	}

	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Status,
		profile.Skills,
		profile.Bio,
		profile.GithubUsername,
		profile.Social,
		profile.Experience,
		profile.Education,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
        SELECT id, user_id, company, website, location, status, skills, bio, github_username, social, experience, education, created_at, updated_at
        FROM profiles WHERE user_id=$1`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Company,
		&profile.Website,
		&profile.Location,
		&profile.Status,
		&profile.Skills,
		&profile.Bio,
		&profile.GithubUsername,
		&profile.Social,
		&profile.Experience,
		&profile.Education,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetWithOwner(ctx context.Context, userID string) (*domain.ProfileWithOwner, error) {
	const query = `
        SELECT p.id, p.user_id, p.company, p.website, p.location, p.status, p.skills, p.bio, p.github_username,
               p.social, p.experience, p.education, p.created_at, p.updated_at,
               u.id, u.name, u.avatar
        FROM profiles p
        JOIN users u ON u.id = p.user_id
        WHERE p.user_id=$1`

	var rec domain.ProfileWithOwner
	if err := scanProfileWithOwner(r.pool.QueryRow(ctx, query, userID), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *profileRepository) List(ctx context.Context) ([]domain.ProfileWithOwner, error) {
	const query = `
        SELECT p.id, p.user_id, p.company, p.website, p.location, p.status, p.skills, p.bio, p.github_username,
               p.social, p.experience, p.education, p.created_at, p.updated_at,
               u.id, u.name, u.avatar
        FROM profiles p
        JOIN users u ON u.id = p.user_id
        ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]domain.ProfileWithOwner, 0)
	for rows.Next() {
		var rec domain.ProfileWithOwner
		if err := scanProfileWithOwner(rows, &rec); err != nil {
			return nil, err
		}
		profiles = append(profiles, rec)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id=$1`, userID)
	return err
}

func scanProfileWithOwner(row pgx.Row, rec *domain.ProfileWithOwner) error {
	return row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Company,
		&rec.Website,
		&rec.Location,
		&rec.Status,
		&rec.Skills,
		&rec.Bio,
		&rec.GithubUsername,
		&rec.Social,
		&rec.Experience,
		&rec.Education,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.Owner.ID,
		&rec.Owner.Name,
		&rec.Owner.Avatar,
	)
}
