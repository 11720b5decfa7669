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
	"errors"
	"testing"

	prdumperrors "github.com/prdump/prdump/internal/errors"
)

func TestParsePRURL(t *testing.T) {
	tests := []struct {
		input      string
		host       string
		wantOwner  string
		wantRepo   string
		wantNumber int
		wantErr    bool
	}{
		{
			input:      "https://github.com/acme/widgets/pull/42",
			host:       "github.com",
			wantOwner:  "acme",
			wantRepo:   "widgets",
			wantNumber: 42,
		},
		{
			input:      "https://github.com/acme/widgets/pull/42/",
			host:       "github.com",
			wantOwner:  "acme",
			wantRepo:   "widgets",
			wantNumber: 42,
		},
		{
			input:      "https://github.example.com/team/svc/pull/7",
			host:       "github.example.com",
			wantOwner:  "team",
			wantRepo:   "svc",
			wantNumber: 7,
		},
		{
			// wrong host
			input:   "https://gitlab.com/acme/widgets/pull/42",
			host:    "github.com",
			wantErr: true,
		},
		{
			// missing number
			input:   "https://github.com/acme/widgets/pull",
			host:    "github.com",
			wantErr: true,
		},
		{
			// non-numeric number
			input:   "https://github.com/acme/widgets/pull/abc",
			host:    "github.com",
			wantErr: true,
		},
		{
			// extra segments
			input:   "https://github.com/acme/widgets/pull/42/files",
			host:    "github.com",
			wantErr: true,
		},
		{
			// issues path, not a PR
			input:   "https://github.com/acme/widgets/issues/42",
			host:    "github.com",
			wantErr: true,
		},
		{
			// not a URL at all
			input:   "acme/widgets#42",
			host:    "github.com",
			wantErr: true,
		},
		{
			// non-http scheme
			input:   "ftp://github.com/acme/widgets/pull/42",
			host:    "github.com",
			wantErr: true,
		},
		{
			input:   "",
			host:    "github.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		ref, err := ParsePRURL(tt.input, tt.host)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePRURL(%q, %q) error = %v, wantErr %v", tt.input, tt.host, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, prdumperrors.ErrInvalidPRURL) {
				t.Errorf("ParsePRURL(%q) error = %v, want ErrInvalidPRURL", tt.input, err)
			}
			continue
		}
		if ref.Owner != tt.wantOwner || ref.Repo != tt.wantRepo || ref.Number != tt.wantNumber {
			t.Errorf("ParsePRURL(%q) = %+v, want %s/%s#%d", tt.input, ref, tt.wantOwner, tt.wantRepo, tt.wantNumber)
		}
	}
}
