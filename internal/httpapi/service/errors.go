package service

import "errors"

// Error kinds surfaced to callers. Handlers map these to HTTP statuses
// with errors.Is, so services must return (or wrap) one of them for every
// expected failure.
var (
	// not-found kind
	ErrGenreNotFound            = errors.New("genre not found")
	ErrMovieNotFound            = errors.New("movie not found")
	ErrCharacterNotFound        = errors.New("character not found")
	ErrCharacterOrMovieNotFound = errors.New("character or movie not found")

	// invalid-argument kind
	ErrOrderNotDefined = errors.New("order not defined")
	ErrScoreOutOfRange = errors.New("score must be between 0 and 5")

	// conflict kind
	ErrLinkExists     = errors.New("character is already linked to this movie")
	ErrGenreHasMovies = errors.New("genre still has movies and cannot be deleted")
)
