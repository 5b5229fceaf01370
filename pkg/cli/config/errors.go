package config

import "github.com/m-mizutani/goerr/v2"

var (
	ErrMissingID    = goerr.New("missing id")
	ErrMissingLabel = goerr.New("missing label")
	ErrDuplicateID  = goerr.New("duplicate id")
)
