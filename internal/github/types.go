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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

import "time"

// PullRequest is the summary record for a single pull request. It is produced
// by the locator (single-PR fetch or author search) and embedded into the
// Record emitted for each exported pull request.
//
// Owner and Repo are always derived from the pull request's web URL so that
// cross-repository search results are handled uniformly.
type PullRequest struct {
	Number    int       `json:"number"`
	URL       string    `json:"url"`
	Owner     string    `json:"owner"`
	Repo      string    `json:"repo"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	State     string    `json:"state"`
	IsDraft   bool      `json:"is_draft"`
	Labels    []string  `json:"labels"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment represents either an issue-thread comment or a code-review comment
// on a pull request. The review variant carries the diff-position fields;
// they are omitted for plain issue comments.
//
// Reactions is populated only when reaction enrichment is enabled: a pointer
// distinguishes "not fetched" (field absent from output) from "fetched, none
// found" (empty array in output).
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Review comment fields
	Path      string `json:"path,omitempty"`
	DiffHunk  string `json:"diff_hunk,omitempty"`
	Line      int    `json:"line,omitempty"`
	CommitID  string `json:"commit_id,omitempty"`
	ReviewID  int64  `json:"review_id,omitempty"`
	InReplyTo int64  `json:"in_reply_to,omitempty"`

	Reactions *[]Reaction `json:"reactions,omitempty"`
}

// Review represents a reviewer's verdict submitted on a pull request.
type Review struct {
	ID          int64     `json:"id"`
	Author      string    `json:"author"`
	State       string    `json:"state"`
	Body        string    `json:"body,omitempty"`
	CommitID    string    `json:"commit_id,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Reaction represents an emoji acknowledgment on a pull request or comment.
type Reaction struct {
	ID      int64  `json:"id"`
	User    string `json:"user"`
	Content string `json:"content"`
}

// Commit represents a single commit on a pull request.
type Commit struct {
	SHA         string    `json:"sha"`
	Message     string    `json:"message"`
	Author      string    `json:"author"`
	AuthorName  string    `json:"author_name,omitempty"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Committer   string    `json:"committer,omitempty"`
	AuthoredAt  time.Time `json:"authored_at"`
	CommittedAt time.Time `json:"committed_at"`
	HTMLURL     string    `json:"html_url,omitempty"`
}

// Record is the enriched output unit: one per exported pull request. The five
// list fields are always non-nil, serializing as [] when a retrieval returns
// no data.
type Record struct {
	PullRequest
	IssueComments  []Comment  `json:"issue_comments"`
	ReviewComments []Comment  `json:"review_comments"`
	Reviews        []Review   `json:"reviews"`
	PRReactions    []Reaction `json:"pr_reactions"`
	Commits        []Commit   `json:"commits"`
}

// SearchQuery describes an author/state search for pull requests.
type SearchQuery struct {
	// Author filters pull requests by their author login.
	Author string

	// State is one of "open", "closed", or "merged".
	State string

	// Limit caps the total number of results. Zero means the default of 100.
	Limit int
}

// Default values for fetch operations
const (
	defaultPageSize = 100
	defaultLimit    = 100
)
