package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/study-planner/internal/model"
)

var _sessionColumns = []string{
	"sessions.id",
	"sessions.user_id",
	"sessions.subject_id",
	"sessions.title",
	"sessions.session_date",
	"sessions.session_time",
	"sessions.duration_min",
	"sessions.priority",
	"sessions.notes",
	"sessions.completed",
	"sessions.reminder_sent",
	"subjects.name AS subject_name",
	"subjects.color AS subject_color",
}

type SessionDAO struct {
	Logger *slog.Logger
	*DB
}

func NewSessionDAO(logger *slog.Logger, db *DB) *SessionDAO {
	return &SessionDAO{
		Logger: logger.With("dao", "session"),
		DB:     db,
	}
}

type FindSessionFilter struct {
	// Inclusive YYYY-MM-DD bounds; empty means unbounded.
	From string
	To   string
}

func (dao *SessionDAO) Find(ctx context.Context, user model.ID, filter FindSessionFilter, opts FindOptions) ([]model.Session, error) {
	builder := dao.selectSessions(user, filter).
		Limit(opts.limit()).
		Offset(opts.Offset)

	return dao.selectMany(ctx, dao.Logger.With("query", "find"), builder)
}

// FindAll is Find without paging, for bounded ranges and exports.
func (dao *SessionDAO) FindAll(ctx context.Context, user model.ID, filter FindSessionFilter) ([]model.Session, error) {
	return dao.selectMany(ctx, dao.Logger.With("query", "findAll"), dao.selectSessions(user, filter))
}

func (dao *SessionDAO) selectSessions(user model.ID, filter FindSessionFilter) squirrel.SelectBuilder {
	builder := dao.Builder.
		Select(_sessionColumns...).
		From("sessions").
		LeftJoin("subjects ON subjects.id = sessions.subject_id").
		Where(squirrel.Eq{"sessions.user_id": user}).
		OrderBy("sessions.session_date ASC", "sessions.session_time ASC", "sessions.id ASC")
	if filter.From != "" {
		builder = builder.Where(squirrel.GtOrEq{"sessions.session_date": filter.From})
	}
	if filter.To != "" {
		builder = builder.Where(squirrel.LtOrEq{"sessions.session_date": filter.To})
	}

	return builder
}

func (dao *SessionDAO) selectMany(ctx context.Context, logger *slog.Logger, builder squirrel.SelectBuilder) ([]model.Session, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return []model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	sessions := make([]model.Session, 0)
	if err := dao.SelectContext(ctx, &sessions, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.Session{}, err
	}

	logger.Debug("success query execute", "countSessions", len(sessions))

	return sessions, nil
}

func (dao *SessionDAO) Get(ctx context.Context, user, id model.ID) (model.Session, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select(_sessionColumns...).
		From("sessions").
		LeftJoin("subjects ON subjects.id = sessions.subject_id").
		Where(squirrel.Eq{"sessions.id": id, "sessions.user_id": user}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Session{}, err
	}

	return session, nil
}

type InsertSessionDTO struct {
	User        model.ID
	Subject     *model.ID
	Title       string
	Date        string
	Time        string
	DurationMin int
	Priority    string
	Notes       string
	Completed   bool
}

func (dao *SessionDAO) Insert(ctx context.Context, dto InsertSessionDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("sessions").
		Columns(
			"user_id", "subject_id", "title", "session_date", "session_time",
			"duration_min", "priority", "notes", "completed", "reminder_sent",
		).
		Values(
			dto.User, dto.Subject, dto.Title, dto.Date, dto.Time,
			dto.DurationMin, dto.Priority, dto.Notes, dto.Completed, false,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

// ToggleCompleted flips the completed flag of the user's session.
func (dao *SessionDAO) ToggleCompleted(ctx context.Context, user, id model.ID) error {
	logger := dao.Logger.With("query", "toggleCompleted")

	query, args, err := dao.Builder.
		Update("sessions").
		Set("completed", squirrel.Expr("NOT completed")).
		Where(squirrel.Eq{"id": id, "user_id": user}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.NewError("session", model.ErrNotFound)
	}

	logger.Debug("success query execute", "updateId", id)

	return nil
}

func (dao *SessionDAO) Delete(ctx context.Context, user, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("sessions").
		Where(squirrel.Eq{"id": id, "user_id": user}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.NewError("session", model.ErrNotFound)
	}

	logger.Debug("success query execute", "deleteId", id)

	return nil
}

// FindDueCandidates returns the user's open, not yet reminded sessions on date.
func (dao *SessionDAO) FindDueCandidates(ctx context.Context, user model.ID, date string) ([]model.ReminderCandidate, error) {
	logger := dao.Logger.With("query", "findDueCandidates")

	query, args, err := dao.Builder.
		Select("id", "title", "session_date", "session_time", "duration_min").
		From("sessions").
		Where(squirrel.Eq{
			"user_id":       user,
			"session_date":  date,
			"completed":     false,
			"reminder_sent": false,
		}).
		OrderBy("session_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return []model.ReminderCandidate{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	candidates := make([]model.ReminderCandidate, 0)
	if err := dao.SelectContext(ctx, &candidates, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.ReminderCandidate{}, err
	}

	logger.Debug("success query execute", "countCandidates", len(candidates))

	return candidates, nil
}

// MarkSent latches reminder_sent for all ids in one statement. Rows already
// marked are left alone, so the returned count covers only fresh transitions.
func (dao *SessionDAO) MarkSent(ctx context.Context, ids []model.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	logger := dao.Logger.With("query", "markSent")

	query, args, err := dao.Builder.
		Update("sessions").
		Set("reminder_sent", true).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"reminder_sent": false}).
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	logger.Debug("success query execute", "countMarked", n)

	return n, nil
}
