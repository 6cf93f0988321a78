package infra

import (
	"errors"

	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/pgconv"
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

// WrapRepoErr classifies a storage error. An explicit kind wins; otherwise the
// kind is derived from the driver error. NOT_FOUND and CONFLICT are also marked
// with the shared taxonomy so usecases never need to import this package.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	switch {
	case len(kind) > 0:
		k = kind[0]
	case pgconv.IsNoRows(err):
		k = KindNotFound
	case pgconv.IsUniqueViolation(err):
		k = KindDuplicateKey
	case pgconv.IsForeignKeyViolation(err):
		k = KindForeignKeyViolated
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	var out error = RepositoryError{Kind: k, msg: msg, err: err}

	switch k {
	case KindNotFound:
		out = errs.Mark(out, errs.ErrNotFound)
	case KindConflict:
		out = errs.Mark(out, errs.ErrStaleAssignment)
	}
	return out
}

func NotFound(msg string) error {
	return WrapRepoErr(msg, nil, KindNotFound)
}

// Conflict reports a compare-and-swap update that matched no row.
func Conflict(msg string) error {
	return WrapRepoErr(msg, nil, KindConflict)
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
