package domain

import "errors"

var (
	ErrInvalidData     = errors.New("invalid corpus data")
	ErrNotFound        = errors.New("conjugation not found")
	ErrEmptySelection  = errors.New("no tense group selected")
	ErrSessionNotFound = errors.New("practice session not found")
	ErrNoChallenge     = errors.New("no outstanding challenge")
)
