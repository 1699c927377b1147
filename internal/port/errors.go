package port

import "errors"

var (
	ErrObjectNotFound    = errors.New("storage: object not found")
	ErrContainerNotFound = errors.New("storage: container not found")
	ErrUnauthorized      = errors.New("storage: unauthorized")
	ErrInternal          = errors.New("storage: internal error")
)
