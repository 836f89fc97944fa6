// Package common defines shared sentinel errors used across apptrack
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Preference errors (unknown preference name).
	ErrorUnknownPreference = errors.New("unknown preference")
)
