package report

import "errors"

var (
	ErrEmployeeNotFound = errors.New("no data found for this employee")
)
