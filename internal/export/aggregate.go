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

package export

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/prdump/prdump/internal/github"
)

// defaultEnrichWorkers bounds the concurrent per-comment reaction lookups.
const defaultEnrichWorkers = 4

// AggregatorOptions configures record aggregation.
type AggregatorOptions struct {
	// SkipCommentReactions disables the per-comment reaction lookups,
	// trading field completeness for far fewer API calls on busy PRs.
	SkipCommentReactions bool

	// Workers is the number of concurrent reaction lookups per comment
	// list. Defaults to 4.
	Workers int
}

// Aggregator assembles a complete export record for a pull request by
// collecting its issue comments, review comments, reviews, reactions, and
// commits from the GitHub API.
type Aggregator struct {
	client  github.Client
	opts    AggregatorOptions
	workers int
}

// NewAggregator creates an Aggregator using the given client.
func NewAggregator(client github.Client, opts AggregatorOptions) *Aggregator {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultEnrichWorkers
	}
	return &Aggregator{
		client:  client,
		opts:    opts,
		workers: workers,
	}
}

// Aggregate collects every facet of the pull request into a single record.
// Any API failure aborts the whole record; a record is either complete or
// absent, never partially populated. All list fields are non-nil so the
// encoded record always carries explicit empty arrays.
func (a *Aggregator) Aggregate(ctx context.Context, pr github.PullRequest) (*github.Record, error) {
	ref := github.PRRef{Owner: pr.Owner, Repo: pr.Repo, Number: pr.Number}

	issueComments, err := a.client.ListIssueComments(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, err)
	}

	reviewComments, err := a.client.ListReviewComments(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, err)
	}

	reviews, err := a.client.ListReviews(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, err)
	}

	prReactions, err := a.client.ListPullRequestReactions(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, err)
	}

	commits, err := a.client.ListCommits(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, err)
	}

	if !a.opts.SkipCommentReactions {
		if err := a.attachReactions(ctx, ref, issueComments, a.client.ListIssueCommentReactions); err != nil {
			return nil, fmt.Errorf("aggregating %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, err)
		}
		if err := a.attachReactions(ctx, ref, reviewComments, a.client.ListReviewCommentReactions); err != nil {
			return nil, fmt.Errorf("aggregating %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, err)
		}
	}

	return &github.Record{
		PullRequest:    pr,
		IssueComments:  nonNil(issueComments),
		ReviewComments: nonNil(reviewComments),
		Reviews:        nonNil(reviews),
		PRReactions:    nonNil(prReactions),
		Commits:        nonNil(commits),
	}, nil
}

// nonNil normalizes a nil slice to an empty one. The record fields must
// encode as [] rather than null regardless of what the client returns.
func nonNil[T any](s []T) []T {
	if s == nil {
		return make([]T, 0)
	}
	return s
}

// attachReactions fills in the Reactions field on each comment using the
// given lookup, running up to a.workers lookups concurrently. Each worker
// writes only its own index, so comment order is preserved without locking.
// The first failing lookup cancels the rest.
func (a *Aggregator) attachReactions(ctx context.Context, ref github.PRRef, comments []github.Comment, lookup func(context.Context, github.PRRef, int64) ([]github.Reaction, error)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i := range comments {
		g.Go(func() error {
			reactions, err := lookup(ctx, ref, comments[i].ID)
			if err != nil {
				return fmt.Errorf("fetching reactions for comment %d: %w", comments[i].ID, err)
			}
			if reactions == nil {
				reactions = make([]github.Reaction, 0)
			}
			comments[i].Reactions = &reactions
			return nil
		})
	}

	return g.Wait()
}
