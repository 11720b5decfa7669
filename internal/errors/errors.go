// Copyright 2026 Prdump Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors for consistent error handling across
// the application. The CLI exits 1 on any failure, so these sentinels exist
// for classification in messages and tests rather than for distinct exit codes.
package errors

import "errors"

// Sentinel errors for consistent error handling
var (
	// ErrInvalidPRURL indicates a pull request URL that does not match
	// the expected https://<host>/<owner>/<repo>/pull/<number> shape.
	ErrInvalidPRURL = errors.New("invalid pull request url")

	// ErrInvalidToken indicates GitHub authentication failed.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrNotFound indicates the requested pull request or repository does
	// not exist or is not accessible with the supplied token.
	ErrNotFound = errors.New("pull request not found")

	// ErrNetworkFailure indicates a network connection problem.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	ErrRateLimit = errors.New("github rate limit exceeded")
)
