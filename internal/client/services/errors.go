package services

import "errors"

var (
	ErrNoActiveUser          = errors.New("no active user")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
	ErrFolderNameUnavailable = errors.New("folder name unavailable")
	ErrInvalidFolderRecord   = errors.New("invalid folder record")
)
