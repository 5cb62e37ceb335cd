package infra

import (
	"errors"
	"log/slog"

	"lifepass-admin/internal/pkg/errs"
	"lifepass-admin/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindNotFound {
		slogger.Debug("Repository miss: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// WrapPgErr derives the kind from the driver error.
func WrapPgErr(slogger *slog.Logger, msg string, err error) error {
	kind := KindDBFailure
	switch {
	case pgconv.IsNoRows(err):
		kind = KindNotFound
	case pgconv.IsUniqueViolation(err):
		kind = KindDuplicateKey
	case pgconv.IsForeignKeyViolation(err):
		kind = KindForeignKeyViolated
	}
	return WrapRepoErr(slogger, kind, msg, err)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)

// Classify maps a repository error onto the shared sentinels so handlers can
// pick a status code without knowing about the persistence layer.
func Classify(err error) error {
	var e RepositoryError
	if !errors.As(err, &e) {
		return err
	}
	switch e.Kind {
	case KindNotFound:
		return errs.Mark(err, errs.ErrNotFound)
	case KindDuplicateKey, KindConflict:
		return errs.Mark(err, errs.ErrConflict)
	case KindForeignKeyViolated:
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
