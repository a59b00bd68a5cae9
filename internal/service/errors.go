package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrContentNotFound = errors.New("content not found")
	ErrProfileNotFound = errors.New("client profile not found")
	ErrFormNotFound    = errors.New("form not found")

	ErrValidationMissingRequired = errors.New("required form fields are missing")
)
