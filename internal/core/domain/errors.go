package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")

	ErrContentNotFound  = errors.New("content not found")
	ErrGiveawayNotFound = errors.New("giveaway not found")
	ErrInvalidGiveaway  = errors.New("invalid giveaway")
	ErrGiveawayClosed   = errors.New("giveaway is not open for entries")
	ErrAlreadyEntered   = errors.New("giveaway already entered")
	ErrFavoriteExists   = errors.New("content already favorited")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
