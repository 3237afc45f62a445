package offer

import "errors"

var (
	ErrNotFound               = errors.New("offer not found")
	ErrIdentityNotFound       = errors.New("wallet address is not registered")
	ErrInvalidReference       = errors.New("invalid reference")
	ErrInvalidAmount          = errors.New("invalid token amount")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrAlreadyClaimed         = errors.New("offer already claimed")
	ErrConcurrentModification = errors.New("offer was modified concurrently")
	ErrUnauthorized           = errors.New("caller is not allowed to perform this transition")
)
