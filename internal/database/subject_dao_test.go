package database

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protomem/study-planner/internal/model"
)

func TestSubjectDAO(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := newTestUser(t, db, "student@example.com")
	other := newTestUser(t, db, "other@example.com")

	dao := NewSubjectDAO(slog.Default(), db)
	sessions := NewSessionDAO(slog.Default(), db)

	physics, err := dao.Insert(ctx, InsertSubjectDTO{User: user, Name: "Physics"})
	require.NoError(t, err)
	math, err := dao.Insert(ctx, InsertSubjectDTO{User: user, Name: "Math", Color: "#123456"})
	require.NoError(t, err)
	_, err = dao.Insert(ctx, InsertSubjectDTO{User: other, Name: "History"})
	require.NoError(t, err)

	insertSession(t, sessions, InsertSessionDTO{User: user, Subject: &math, Title: "a", Date: "2026-10-18", Time: "10:00"})
	linked := insertSession(t, sessions, InsertSessionDTO{User: user, Subject: &math, Title: "b", Date: "2026-10-18", Time: "11:00"})

	subjects, err := dao.FindWithCounts(ctx, user)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Math", subjects[0].Name)
	assert.Equal(t, "#123456", subjects[0].Color)
	assert.Equal(t, 2, subjects[0].SessionsCount)
	assert.Equal(t, "Physics", subjects[1].Name)
	assert.Equal(t, model.DefaultColor, subjects[1].Color)
	assert.Equal(t, 0, subjects[1].SessionsCount)

	plain, err := dao.Find(ctx, user)
	require.NoError(t, err)
	assert.Len(t, plain, 2)

	_, err = dao.Get(ctx, other, physics)
	assert.ErrorIs(t, err, model.ErrNotFound)

	resolved, err := dao.Resolve(ctx, user, "Physics")
	require.NoError(t, err)
	assert.Equal(t, physics, resolved)

	created, err := dao.Resolve(ctx, user, "Chemistry")
	require.NoError(t, err)
	chemistry, err := dao.GetByName(ctx, user, "Chemistry")
	require.NoError(t, err)
	assert.Equal(t, created, chemistry.ID)

	assert.ErrorIs(t, dao.Delete(ctx, other, math), model.ErrNotFound)

	require.NoError(t, dao.Delete(ctx, user, math))
	session, err := sessions.Get(ctx, user, linked)
	require.NoError(t, err)
	assert.Nil(t, session.Subject, "sessions survive their subject")

	_, err = dao.Get(ctx, user, math)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
