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

package github

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	prdumperrors "github.com/prdump/prdump/internal/errors"
)

// PRRef identifies a single pull request by its repository coordinates.
type PRRef struct {
	Owner  string
	Repo   string
	Number int
}

// ParsePRURL parses a pull request web URL of the form
// https://<host>/<owner>/<repo>/pull/<number> into a PRRef. The host must
// match exactly; missing or non-numeric numbers, extra path segments, and
// non-HTTP schemes are all rejected. Errors wrap ErrInvalidPRURL.
func ParsePRURL(raw, host string) (PRRef, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return PRRef{}, fmt.Errorf("%q is not a valid URL: %w", raw, prdumperrors.ErrInvalidPRURL)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return PRRef{}, fmt.Errorf("%q: expected an http(s) URL: %w", raw, prdumperrors.ErrInvalidPRURL)
	}
	if u.Host != host {
		return PRRef{}, fmt.Errorf("%q: host %q does not match configured host %q: %w",
			raw, u.Host, host, prdumperrors.ErrInvalidPRURL)
	}

	ref, ok := splitPRPath(u.Path)
	if !ok {
		return PRRef{}, fmt.Errorf("%q: expected path /<owner>/<repo>/pull/<number>: %w",
			raw, prdumperrors.ErrInvalidPRURL)
	}
	return ref, nil
}

// splitPRPath extracts pull request coordinates from a URL path of the form
// /<owner>/<repo>/pull/<number>. A single trailing slash is tolerated;
// anything else that deviates from the four-segment shape is rejected.
func splitPRPath(path string) (PRRef, bool) {
	path = strings.TrimPrefix(strings.TrimSuffix(path, "/"), "/")
	parts := strings.Split(path, "/")
	if len(parts) != 4 || parts[2] != "pull" {
		return PRRef{}, false
	}
	if parts[0] == "" || parts[1] == "" {
		return PRRef{}, false
	}
	number, err := strconv.Atoi(parts[3])
	if err != nil || number <= 0 {
		return PRRef{}, false
	}
	return PRRef{Owner: parts[0], Repo: parts[1], Number: number}, true
}
