package client

import "errors"

var (
	ErrMissingCommand  = errors.New("missing command")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrWrongArgCount   = errors.New("wrong number of arguments")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIncompleteLogin = errors.New("both login and password must be set")
)
