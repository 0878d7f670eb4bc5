package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound    = errors.New("resource not found")
	ErrDomainTaken = errors.New("team with this domain already exists")
)
