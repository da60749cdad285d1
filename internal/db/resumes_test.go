package db

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-cv/internal/types"
)

type fakeRow struct {
	raw []byte
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.raw
	return nil
}

type fakeQuerier struct {
	mu    sync.Mutex
	rows  map[string]fakeRow
	calls int
	args  []any
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.args = args
	row, ok := f.rows[sql]
	if !ok {
		return fakeRow{err: errors.New("unexpected query")}
	}
	return row
}

func janeRows() map[string]fakeRow {
	return map[string]fakeRow{
		profileQuery: {raw: []byte(`{"personalInfo": {"name": "Jane Doe", "title": "Engineer",
			"email": "jane@example.com", "phone": null, "github": "https://github.com/janedoe"},
			"about": "• Shipped"}`)},
		experienceQuery: {raw: []byte(`[{"title": "Senior Engineer", "company": "Acme", "period": "2021 - Present",
			"description": null, "isCurrent": true}]`)},
		educationQuery: {raw: []byte(`[]`)},
		skillsQuery:    {raw: []byte(`{"frontend": ["React"], "tools": ["Docker", "Git"]}`)},
		languagesQuery: {raw: []byte(`[{"language": "English", "level": "Fluent"}]`)},
		projectsQuery: {raw: []byte(`[{"title": "Layout", "year": "2024", "status": "completed",
			"githubUrl": "https://github.com/janedoe/layout", "demoUrl": null}]`)},
	}
}

func TestGetResumeDocument(t *testing.T) {
	q := &fakeQuerier{rows: janeRows()}
	db := &DB{q: q}
	id := uuid.New()

	doc, err := db.GetResumeDocument(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 6, q.calls)
	assert.Equal(t, []any{id}, q.args)

	assert.Equal(t, "Jane Doe", doc.PersonalInfo.Name)
	assert.Empty(t, doc.PersonalInfo.Phone)
	assert.Equal(t, "• Shipped", doc.About)
	require.Len(t, doc.Experience, 1)
	assert.True(t, doc.Experience[0].IsCurrent)
	assert.Empty(t, doc.Education)
	assert.Equal(t, []string{"Docker", "Git"}, doc.Skills.Tools)
	assert.Nil(t, doc.Skills.Backend)
	assert.Equal(t, types.StatusCompleted, doc.Projects[0].Status)
	assert.Equal(t, "English", doc.Languages[0].Language)
}

func TestGetResumeDocument_ProfileNotFound(t *testing.T) {
	rows := janeRows()
	rows[profileQuery] = fakeRow{err: pgx.ErrNoRows}
	db := &DB{q: &fakeQuerier{rows: rows}}

	_, err := db.GetResumeDocument(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetResumeDocument_SectionFailure(t *testing.T) {
	rows := janeRows()
	rows[projectsQuery] = fakeRow{err: errors.New("relation \"projects\" does not exist")}
	db := &DB{q: &fakeQuerier{rows: rows}}

	_, err := db.GetResumeDocument(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load projects")
	assert.NotErrorIs(t, err, ErrProfileNotFound)
}

func TestGetResumeDocument_BadJSON(t *testing.T) {
	rows := janeRows()
	rows[skillsQuery] = fakeRow{raw: []byte(`["not", "an", "object"]`)}
	db := &DB{q: &fakeQuerier{rows: rows}}

	_, err := db.GetResumeDocument(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load skills")
}

func TestDB_CloseWithoutPool(t *testing.T) {
	db := &DB{}
	db.Close()
	assert.NoError(t, db.Ping(context.Background()))
}
