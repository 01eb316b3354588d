package client

import (
	"strings"

	"club-booking/internal/pkg/errs"
)

func unreachable(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), errs.ErrDependencyUnreachable)
}

func unexpectedStatus(service string, status int) error {
	return errs.Mark(errs.Newf("%s answered with status %d", service, status), errs.ErrDependencyUnreachable)
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
