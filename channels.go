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

package slackclean

// In this file: conversations related code.

import (
	"context"
	"fmt"
	"runtime/trace"

	"github.com/rusq/slack"

	"github.com/rusq/slackclean/internal/network"
)

// fetchConversations fetches all conversations of the configured types
// that are visible to the token, following the cursor until the API
// signals the end of pagination.
func (c *Cleaner) fetchConversations(ctx context.Context) error {
	ctx, task := trace.NewTask(ctx, "fetchConversations")
	defer task.End()

	params := &slack.GetConversationsParameters{
		Types: c.cfg.channelTypes,
		Limit: c.cfg.limits.Request.Conversations,
	}
	var next string
	for {
		params.Cursor = next
		var chans []slack.Channel
		if err := network.WithRetry(ctx, c.lim.tier3, c.cfg.limits.Tier3.Retries, func() error {
			var err error
			chans, next, err = c.client.GetConversationsContext(ctx, params)
			return err
		}); err != nil {
			return fmt.Errorf("API error: %w", err)
		}

		for i := range chans {
			conv := Conversation{Channel: chans[i], c: c}
			if conv.IsIM {
				// name the DM after the user on the other side, the way
				// the client UI shows it, so that name predicates work on
				// it.
				conv.Name = c.userIdx.DisplayName(conv.Channel.User)
			}
			c.convs = append(c.convs, conv)
		}

		// the API can return empty pages with a non-empty cursor when
		// running under a restricted user.
		if next == "" {
			break
		}
	}
	c.lg.DebugContext(ctx, "collected conversations", "count", len(c.convs))
	return nil
}

// Conversations returns all conversations collected on initialisation, in
// the order the API returned them.
func (c *Cleaner) Conversations() []Conversation {
	return c.convs
}

// Lookup finds a conversation by its name or ID.
func (c *Cleaner) Lookup(nameOrID string) (Conversation, bool) {
	for _, conv := range c.convs {
		if conv.ID == nameOrID || conv.Name == nameOrID {
			return conv, true
		}
	}
	return Conversation{}, false
}
