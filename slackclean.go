// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package slackclean is a scripting convenience library for bulk-cleaning
// Slack workspaces.  It enumerates conversations, messages and files as
// lazy sequences over the paginated Slack API, lets the caller filter them
// with composable predicates (see the predicate package), and deletes
// messages with optional cascade over thread replies and attached files,
// reporting a per-item outcome instead of failing the whole run.
package slackclean

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"

	"github.com/rusq/slack"
	"golang.org/x/time/rate"

	"github.com/rusq/slackclean/auth"
	"github.com/rusq/slackclean/internal/network"
	"github.com/rusq/slackclean/internal/structures"
)

//go:generate mockgen -source slackclean.go -destination clienter_mock_test.go -package slackclean -mock_names Slacker=mockSlacker

// Slacker is the interface with the functions of slack.Client that the
// cleaner uses.  It exists to allow mocking the client in tests.
type Slacker interface {
	AuthTestContext(ctx context.Context) (response *slack.AuthTestResponse, err error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) (channels []slack.Channel, nextCursor string, err error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) (msgs []slack.Message, hasMore bool, nextCursor string, err error)
	GetFilesContext(ctx context.Context, params slack.GetFilesParameters) ([]slack.File, *slack.Paging, error)
	DeleteMessageContext(ctx context.Context, channel, messageTimestamp string) (string, string, error)
	DeleteFileContext(ctx context.Context, fileID string) error
}

// Cleaner is the session that holds the client and the run-scoped user and
// conversation collections.  Zero value is not usable, must be initialised
// with New.  It is not safe for concurrent use: listing and deletion are
// driven by a single caller pulling from the sequences.
type Cleaner struct {
	client Slacker
	lg     *slog.Logger

	wspInfo *slack.AuthTestResponse

	users   []User
	userIdx structures.UserIndex
	convs   []Conversation

	lim limiters
	cfg config
}

// limiters are the per-tier rate limiters.  Slack rate limits are per
// method family, so listing and deletion methods of the same tier share a
// limiter.
type limiters struct {
	tier2 *rate.Limiter
	tier3 *rate.Limiter
}

func newLimiters(l network.Limits) limiters {
	return limiters{
		tier2: network.NewLimiter(network.Tier2, l.Tier2.Burst, int(l.Tier2.Boost)),
		tier3: network.NewLimiter(network.Tier3, l.Tier3.Burst, int(l.Tier3.Boost)),
	}
}

// AllChanTypes enumerates all API-supported channel [types].
//
// [types]: https://api.slack.com/methods/conversations.list#arg_types
var AllChanTypes = []string{"mpim", "im", "public_channel", "private_channel"}

// New creates a new cleaner session with the provided options, and
// populates the internal collections of users and conversations for
// lookups.  If it fails to authenticate, *auth.Error is returned.
func New(ctx context.Context, prov auth.Provider, opts ...Option) (*Cleaner, error) {
	ctx, task := trace.NewTask(ctx, "New")
	defer task.End()

	if err := prov.Validate(); err != nil {
		return nil, &auth.Error{Err: err, Msg: "auth provider validation error"}
	}

	c := &Cleaner{
		lg:  slog.Default(),
		cfg: defConfig,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lim = newLimiters(c.cfg.limits)

	if c.client == nil {
		httpCl, err := prov.HTTPClient()
		if err != nil {
			return nil, fmt.Errorf("error initialising the HTTP client: %w", err)
		}
		c.client = slack.New(prov.SlackToken(), slack.OptionHTTPClient(httpCl))
	}

	wi, err := c.client.AuthTestContext(ctx)
	if err != nil {
		return nil, &auth.Error{Err: err}
	}
	c.wspInfo = wi
	c.lg.DebugContext(ctx, "authenticated", "team", wi.Team, "user", wi.User)

	if err := c.fetchUsers(ctx); err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	if err := c.fetchConversations(ctx); err != nil {
		return nil, fmt.Errorf("error fetching conversations: %w", err)
	}

	return c, nil
}

// Client returns the underlying API client.
func (c *Cleaner) Client() Slacker {
	return c.client
}

// CurrentUserID returns the ID of the user the session is authenticated
// as.
func (c *Cleaner) CurrentUserID() string {
	return c.wspInfo.UserID
}
