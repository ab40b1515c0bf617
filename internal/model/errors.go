package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Pool errors
	ErrPoolTooSmall  = errors.New("phrase pool needs at least 24 unique phrases")
	ErrPoolNotLoaded = errors.New("phrase pool not loaded")

	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
)
