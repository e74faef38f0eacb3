package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed     = errors.New("validation failed")
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrInvalidMatchResult   = errors.New("match result is invalid")
	ErrSameTeamTwice        = errors.New("a team cannot play against itself")
	ErrTeamNotInStage       = errors.New("team is not part of this stage")
	ErrStageNotConfigured   = errors.New("stage is not configured")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Ошибки конфликтов
	ErrTeamNameConflict  = errors.New("team name is already in use")
	ErrUserEmailConflict = errors.New("email address is already in use")

	// Ошибки, специфичные для сущностей
	ErrTeamNotFound         = errors.New("team not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrBracketMatchNotFound = errors.New("bracket match not found")
	ErrUserNotFound         = errors.New("user not found")
)
