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

// In this file: the lazy message listing pipeline.

import (
	"context"
	"fmt"
	"iter"
	"runtime/trace"
	"time"

	"github.com/rusq/slack"

	"github.com/rusq/slackclean/internal/network"
	"github.com/rusq/slackclean/internal/structures"
)

// msgTypeMessage is the only message type value the pipeline emits, the
// rest (channel events, etc.) are filtered out.
const msgTypeMessage = "message"

// ListOption is the signature of the listing option-setting function.
type ListOption func(*listOptions)

type listOptions struct {
	oldest, latest time.Time
	withReplies    bool
	filter         func(Message) bool
	fileUser       string
}

// Oldest limits the listing to entries after the given timestamp,
// inclusive.
func Oldest(t time.Time) ListOption {
	return func(o *listOptions) {
		o.oldest = t
	}
}

// Latest limits the listing to entries before the given timestamp,
// inclusive.
func Latest(t time.Time) ListOption {
	return func(o *listOptions) {
		o.latest = t
	}
}

// WithReplies splices thread replies into the sequence immediately after
// their parent message.  The parent is still emitted.
func WithReplies() ListOption {
	return func(o *listOptions) {
		o.withReplies = true
	}
}

// WithFilter sets the predicate applied to every message before it is
// emitted.  Messages failing the predicate are silently dropped.  Thread
// expansion is driven by the listing, not by the filter: replies of a
// filtered-out parent are still fetched and tested individually.
func WithFilter(fn func(Message) bool) ListOption {
	return func(o *listOptions) {
		o.filter = fn
	}
}

func (o *listOptions) apply(opt []ListOption) {
	for _, fn := range opt {
		fn(o)
	}
	if !o.oldest.IsZero() && !o.latest.IsZero() && o.oldest.After(o.latest) {
		o.oldest, o.latest = o.latest, o.oldest
	}
}

func (o *listOptions) match(m Message) bool {
	return o.filter == nil || o.filter(m)
}

// Messages returns a lazy sequence of messages of the given conversations,
// enumerated one conversation at a time, in the order supplied.  If convs
// is empty, all conversations visible to the token are listed.  Within one
// conversation messages follow the API native order.  The sequence is
// single-pass and not restartable; a fresh call re-issues the pagination
// from the start.  Stopping the iteration early stops the network calls.
//
// The sequence yields a non-nil error and terminates when a page fetch
// fails beyond the retry budget.
func (c *Cleaner) Messages(ctx context.Context, convs []Conversation, opt ...ListOption) iter.Seq2[Message, error] {
	var options listOptions
	options.apply(opt)
	if len(convs) == 0 {
		convs = c.convs
	}
	return func(yield func(Message, error) bool) {
		ctx, task := trace.NewTask(ctx, "Messages")
		defer task.End()
		for _, conv := range convs {
			if !c.channelMessages(ctx, conv.ID, &options, yield) {
				return
			}
		}
	}
}

// Messages returns the lazy message sequence of this single conversation.
func (ch Conversation) Messages(ctx context.Context, opt ...ListOption) iter.Seq2[Message, error] {
	return ch.c.Messages(ctx, []Conversation{ch}, opt...)
}

// channelMessages pages through the conversation history, yielding each
// matching message, and splicing in thread replies when requested.  It
// returns false when the consumer stopped the iteration.
func (c *Cleaner) channelMessages(ctx context.Context, channelID string, o *listOptions, yield func(Message, error) bool) bool {
	c.lg.DebugContext(ctx, "listing messages", "channel", channelID, "oldest", o.oldest, "latest", o.latest)

	var cursor string
	for {
		var resp *slack.GetConversationHistoryResponse
		params := c.histParams(channelID, cursor, o)
		if err := network.WithRetry(ctx, c.lim.tier3, c.cfg.limits.Tier3.Retries, func() error {
			var err error
			trace.WithRegion(ctx, "GetConversationHistoryContext", func() {
				resp, err = c.client.GetConversationHistoryContext(ctx, params)
			})
			return err
		}); err != nil {
			return yieldErr(yield, fmt.Errorf("conversation %s: %w", channelID, err))
		}
		if !resp.Ok {
			return yieldErr(yield, fmt.Errorf("conversation %s: %w", channelID, slack.SlackErrorResponse{Err: resp.Error}))
		}

		for i := range resp.Messages {
			if resp.Messages[i].Type != msgTypeMessage {
				continue
			}
			msg := c.newMessage(resp.Messages[i], channelID)
			if o.match(msg) {
				if !yield(msg, nil) {
					return false
				}
			}
			if o.withReplies && msg.HasThread() {
				if !c.threadReplies(ctx, channelID, msg.Timestamp, o, yield) {
					return false
				}
			}
		}

		if !resp.HasMore {
			return true
		}
		cursor = resp.ResponseMetaData.NextCursor
	}
}

// threadReplies pages through the thread identified by threadTS, yielding
// each matching reply.  The parent message, which the API repeats as the
// first item of the first page, is skipped, so that the pipeline visits
// every message exactly once.
func (c *Cleaner) threadReplies(ctx context.Context, channelID, threadTS string, o *listOptions, yield func(Message, error) bool) bool {
	var cursor string
	for {
		params := &slack.GetConversationRepliesParameters{
			ChannelID: channelID,
			Timestamp: threadTS,
			Cursor:    cursor,
			Limit:     c.cfg.limits.Request.Replies,
		}
		var (
			msgs    []slack.Message
			hasMore bool
			next    string
		)
		if err := network.WithRetry(ctx, c.lim.tier3, c.cfg.limits.Tier3.Retries, func() error {
			var err error
			trace.WithRegion(ctx, "GetConversationRepliesContext", func() {
				msgs, hasMore, next, err = c.client.GetConversationRepliesContext(ctx, params)
			})
			return err
		}); err != nil {
			return yieldErr(yield, fmt.Errorf("thread %s:%s: %w", channelID, threadTS, err))
		}

		for i := range msgs {
			if msgs[i].Type != msgTypeMessage || msgs[i].Timestamp == threadTS {
				continue
			}
			msg := c.newMessage(msgs[i], channelID)
			if !o.match(msg) {
				continue
			}
			if !yield(msg, nil) {
				return false
			}
		}

		if !hasMore {
			return true
		}
		cursor = next
	}
}

// Replies returns the lazy sequence of replies to this message, excluding
// the message itself.  A message with no thread yields an empty sequence.
func (m Message) Replies(ctx context.Context) iter.Seq2[Message, error] {
	return func(yield func(Message, error) bool) {
		if !m.HasThread() {
			return
		}
		var o listOptions
		m.c.threadReplies(ctx, m.ChannelID, m.Timestamp, &o, yield)
	}
}

// histParams returns the conversations.history parameters for the page
// identified by the cursor.
func (c *Cleaner) histParams(channelID, cursor string, o *listOptions) *slack.GetConversationHistoryParameters {
	return &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Cursor:    cursor,
		Limit:     c.cfg.limits.Request.Messages,
		Oldest:    structures.FormatSlackTS(o.oldest),
		Latest:    structures.FormatSlackTS(o.latest),
		Inclusive: true,
	}
}

// yieldErr reports the error to the consumer.  It always returns false:
// an error terminates the sequence whether or not the consumer wants
// more.
func yieldErr(yield func(Message, error) bool, err error) bool {
	yield(Message{}, err)
	return false
}
