// Package giterror classifies errors returned by the GitHub REST API into
// the categories the rest of the application cares about: authentication,
// not-found, rate limiting, and network failures.
package giterror
