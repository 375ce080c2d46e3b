package store

import "github.com/ayoisaiah/interval/internal/apperr"

var (
	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q: use bolt or sqlite",
	}
	errDBLocked = &apperr.Error{
		Message: "is interval already running? Only one instance can use the database at a time",
	}
	errNewerSchema = &apperr.Error{
		Message: "the database was written by a newer version of interval (schema %d, supported %d)",
	}
	errOpenDB = &apperr.Error{
		Message: "unable to open the database at %s",
	}
)
