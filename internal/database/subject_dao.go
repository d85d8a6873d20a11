package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/study-planner/internal/model"
)

var _subjectColumns = []string{"subjects.id", "subjects.user_id", "subjects.name", "subjects.color"}

type SubjectDAO struct {
	Logger *slog.Logger
	*DB
}

func NewSubjectDAO(logger *slog.Logger, db *DB) *SubjectDAO {
	return &SubjectDAO{
		Logger: logger.With("dao", "subject"),
		DB:     db,
	}
}

// Find returns the user's subjects ordered by name.
func (dao *SubjectDAO) Find(ctx context.Context, user model.ID) ([]model.Subject, error) {
	logger := dao.Logger.With("query", "find")

	query, args, err := dao.Builder.
		Select(_subjectColumns...).
		From("subjects").
		Where(squirrel.Eq{"subjects.user_id": user}).
		OrderBy("subjects.name ASC").
		ToSql()
	if err != nil {
		return []model.Subject{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	subjects := make([]model.Subject, 0)
	if err := dao.SelectContext(ctx, &subjects, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.Subject{}, err
	}

	logger.Debug("success query execute", "countSubjects", len(subjects))

	return subjects, nil
}

// FindWithCounts is Find plus the number of sessions linked to each subject.
func (dao *SubjectDAO) FindWithCounts(ctx context.Context, user model.ID) ([]model.Subject, error) {
	logger := dao.Logger.With("query", "findWithCounts")

	query, args, err := dao.Builder.
		Select(append(_subjectColumns, "COUNT(sessions.id) AS sessions_count")...).
		From("subjects").
		LeftJoin("sessions ON sessions.subject_id = subjects.id").
		Where(squirrel.Eq{"subjects.user_id": user}).
		GroupBy(_subjectColumns...).
		OrderBy("subjects.name ASC").
		ToSql()
	if err != nil {
		return []model.Subject{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	subjects := make([]model.Subject, 0)
	if err := dao.SelectContext(ctx, &subjects, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return []model.Subject{}, err
	}

	logger.Debug("success query execute", "countSubjects", len(subjects))

	return subjects, nil
}

func (dao *SubjectDAO) Get(ctx context.Context, user, id model.ID) (model.Subject, error) {
	return dao.getBy(ctx, "get", squirrel.Eq{"subjects.user_id": user, "subjects.id": id})
}

func (dao *SubjectDAO) GetByName(ctx context.Context, user model.ID, name string) (model.Subject, error) {
	return dao.getBy(ctx, "getByName", squirrel.Eq{"subjects.user_id": user, "subjects.name": name})
}

func (dao *SubjectDAO) getBy(ctx context.Context, name string, where squirrel.Eq) (model.Subject, error) {
	logger := dao.Logger.With("query", name)

	query, args, err := dao.Builder.
		Select(_subjectColumns...).
		From("subjects").
		Where(where).
		OrderBy("subjects.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Subject{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var subject model.Subject
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&subject); err != nil {
		if IsNoRows(err) {
			return model.Subject{}, model.NewError("subject", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Subject{}, err
	}

	return subject, nil
}

type InsertSubjectDTO struct {
	User  model.ID
	Name  string
	Color string
}

func (dao *SubjectDAO) Insert(ctx context.Context, dto InsertSubjectDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	if dto.Color == "" {
		dto.Color = model.DefaultColor
	}

	query, args, err := dao.Builder.
		Insert("subjects").
		Columns("user_id", "name", "color").
		Values(dto.User, dto.Name, dto.Color).
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

// Resolve returns the id of the user's subject with the given name,
// creating it with the default colour when it does not exist yet.
func (dao *SubjectDAO) Resolve(ctx context.Context, user model.ID, name string) (model.ID, error) {
	subject, err := dao.GetByName(ctx, user, name)
	if err == nil {
		return subject.ID, nil
	}
	if !IsNotFound(err) {
		return 0, err
	}

	return dao.Insert(ctx, InsertSubjectDTO{User: user, Name: name})
}

// Delete unlinks the user's sessions from the subject and removes it.
func (dao *SubjectDAO) Delete(ctx context.Context, user, id model.ID) error {
	logger := dao.Logger.With("query", "delete")

	unlinkQuery, unlinkArgs, err := dao.Builder.
		Update("sessions").
		Set("subject_id", nil).
		Where(squirrel.Eq{"subject_id": id, "user_id": user}).
		ToSql()
	if err != nil {
		return err
	}

	deleteQuery, deleteArgs, err := dao.Builder.
		Delete("subjects").
		Where(squirrel.Eq{"id": id, "user_id": user}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", unlinkQuery, "args", unlinkArgs)

	if _, err := dao.ExecContext(ctx, unlinkQuery, unlinkArgs...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("build query", "sql", deleteQuery, "args", deleteArgs)

	res, err := dao.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.NewError("subject", model.ErrNotFound)
	}

	logger.Debug("success query execute", "deleteId", id)

	return nil
}
