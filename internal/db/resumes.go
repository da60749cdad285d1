package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Each query returns a single JSON value shaped like the matching document field.
const (
	profileQuery = `SELECT json_build_object(
		'personalInfo', json_build_object(
			'name', p.name, 'title', p.title, 'email', p.email, 'phone', p.phone,
			'location', p.location, 'website', p.website, 'github', p.github, 'linkedin', p.linkedin),
		'about', p.about)
	FROM profiles p WHERE p.id = $1`

	experienceQuery = `SELECT coalesce(json_agg(json_build_object(
		'title', e.title, 'company', e.company, 'period', e.period,
		'description', e.description, 'isCurrent', e.is_current) ORDER BY e.sort_order), '[]'::json)
	FROM experiences e WHERE e.profile_id = $1`

	educationQuery = `SELECT coalesce(json_agg(json_build_object(
		'degree', ed.degree, 'institution', ed.institution, 'period', ed.period,
		'description', ed.description) ORDER BY ed.sort_order), '[]'::json)
	FROM education ed WHERE ed.profile_id = $1`

	skillsQuery = `SELECT coalesce(json_object_agg(s.category, s.names), '{}'::json)
	FROM (
		SELECT category, json_agg(name ORDER BY sort_order) AS names
		FROM skills WHERE profile_id = $1 GROUP BY category
	) s`

	languagesQuery = `SELECT coalesce(json_agg(json_build_object(
		'language', l.language, 'level', l.level) ORDER BY l.sort_order), '[]'::json)
	FROM languages l WHERE l.profile_id = $1`

	projectsQuery = `SELECT coalesce(json_agg(json_build_object(
		'title', pr.title, 'shortDescription', pr.short_description, 'description', pr.description,
		'year', pr.year::text, 'status', pr.status,
		'githubUrl', pr.github_url, 'demoUrl', pr.demo_url) ORDER BY pr.sort_order), '[]'::json)
	FROM projects pr WHERE pr.profile_id = $1`
)

// GetResumeDocument assembles the document for profileID. The six section queries run
// concurrently; the first failure cancels the rest.
func (db *DB) GetResumeDocument(ctx context.Context, profileID uuid.UUID) (*types.ResumeDocument, error) {
	var (
		head struct {
			PersonalInfo types.PersonalInfo `json:"personalInfo"`
			About        string             `json:"about"`
		}
		doc types.ResumeDocument
	)

	g, gCtx := errgroup.WithContext(ctx)
	sections := []struct {
		name  string
		query string
		dest  any
	}{
		{"profile", profileQuery, &head},
		{"experience", experienceQuery, &doc.Experience},
		{"education", educationQuery, &doc.Education},
		{"skills", skillsQuery, &doc.Skills},
		{"languages", languagesQuery, &doc.Languages},
		{"projects", projectsQuery, &doc.Projects},
	}
	for _, s := range sections {
		g.Go(func() error {
			if err := queryJSON(gCtx, db.q, s.query, s.dest, profileID); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return ErrProfileNotFound
				}
				return fmt.Errorf("failed to load %s: %w", s.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc.PersonalInfo = head.PersonalInfo
	doc.About = head.About
	return &doc, nil
}

// queryJSON runs a query returning a single JSON value and decodes it into dest.
func queryJSON(ctx context.Context, q rowQuerier, sql string, dest any, args ...any) error {
	var raw []byte
	if err := q.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}
