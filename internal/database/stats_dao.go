package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/study-planner/internal/model"
)

type StatsDAO struct {
	Logger *slog.Logger
	*DB
}

func NewStatsDAO(logger *slog.Logger, db *DB) *StatsDAO {
	return &StatsDAO{
		Logger: logger.With("dao", "stats"),
		DB:     db,
	}
}

// Totals aggregates the user's sessions dated from onwards.
func (dao *StatsDAO) Totals(ctx context.Context, user model.ID, from string) (model.Stats, error) {
	logger := dao.Logger.With("query", "totals")

	query, args, err := dao.Builder.
		Select(
			"COUNT(*) AS total",
			"COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS done",
			"COALESCE(SUM(duration_min), 0) AS minutes",
		).
		From("sessions").
		Where(squirrel.Eq{"user_id": user}).
		Where(squirrel.GtOrEq{"session_date": from}).
		ToSql()
	if err != nil {
		return model.Stats{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var stats model.Stats
	if err := dao.GetContext(ctx, &stats, query, args...); err != nil {
		if IsNoRows(err) {
			return model.Stats{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return model.Stats{}, err
	}

	logger.Debug("success query execute", "stats", stats)

	return stats, nil
}

// BySubject breaks the user's sessions dated from onwards down by subject,
// sessions without a subject falling into a single bucket.
func (dao *StatsDAO) BySubject(ctx context.Context, user model.ID, from string) ([]model.SubjectBreakdown, error) {
	logger := dao.Logger.With("query", "bySubject")

	nameExpr := "COALESCE(subjects.name, '" + model.NoSubjectName + "')"

	query, args, err := dao.Builder.
		Select(
			nameExpr+" AS name",
			"MAX(COALESCE(subjects.color, '"+model.DefaultColor+"')) AS color",
			"COUNT(sessions.id) AS count_sessions",
			"COALESCE(SUM(sessions.duration_min), 0) AS minutes",
		).
		From("sessions").
		LeftJoin("subjects ON subjects.id = sessions.subject_id").
		Where(squirrel.Eq{"sessions.user_id": user}).
		Where(squirrel.GtOrEq{"sessions.session_date": from}).
		GroupBy(nameExpr).
		OrderBy("minutes DESC", "name ASC").
		ToSql()
	if err != nil {
		return []model.SubjectBreakdown{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	rows := make([]model.SubjectBreakdown, 0)
	if err := dao.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.SubjectBreakdown{}, err
	}

	return rows, nil
}

// Daily groups the user's sessions dated from onwards by day, newest first.
func (dao *StatsDAO) Daily(ctx context.Context, user model.ID, from string) ([]model.PeriodBucket, error) {
	return dao.buckets(ctx, "daily", "session_date", user, from, 0)
}

// Monthly groups the user's sessions dated from onwards by YYYY-MM, newest first.
func (dao *StatsDAO) Monthly(ctx context.Context, user model.ID, from string, limit uint64) ([]model.PeriodBucket, error) {
	return dao.buckets(ctx, "monthly", "substr(session_date, 1, 7)", user, from, limit)
}

func (dao *StatsDAO) buckets(
	ctx context.Context, name, labelExpr string,
	user model.ID, from string, limit uint64,
) ([]model.PeriodBucket, error) {
	logger := dao.Logger.With("query", name)

	builder := dao.Builder.
		Select(
			labelExpr+" AS label",
			"COUNT(*) AS count_sessions",
			"COALESCE(SUM(duration_min), 0) AS minutes",
		).
		From("sessions").
		Where(squirrel.Eq{"user_id": user}).
		Where(squirrel.GtOrEq{"session_date": from}).
		GroupBy(labelExpr).
		OrderBy("label DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return []model.PeriodBucket{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	rows := make([]model.PeriodBucket, 0)
	if err := dao.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.PeriodBucket{}, err
	}

	return rows, nil
}
