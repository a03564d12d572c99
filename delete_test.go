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

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rusq/slackclean/internal/network"
)

func TestMessage_Delete(t *testing.T) {
	ctx := context.Background()
	t.Run("plain message", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)

		mc.EXPECT().
			DeleteMessageContext(gomock.Any(), "CHY11111", "1.000000").
			Return("CHY11111", "1.000000", nil)

		rr, err := c.newMessage(testMsg("1.000000", "ULM11111", "bye"), "CHY11111").Delete(ctx, DeleteOptions{})
		require.NoError(t, err)
		require.Len(t, rr, 1)
		assert.Equal(t, 1, rr.Deleted())
		assert.Equal(t, Result{Kind: EntityMessage, ChannelID: "CHY11111", ID: "1.000000", Status: StatusDeleted}, rr[0])
	})
	t.Run("cascade deletes replies and files before the parent", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)

		parent := testMsg("10.000000", "ULM11111", "parent")
		parent.ReplyCount = 1
		parent.ThreadTimestamp = parent.Timestamp
		parent.Files = []slack.File{{ID: "FPA11111"}}
		reply := testMsg("11.000000", "ULM22222", "reply")
		reply.ThreadTimestamp = parent.Timestamp
		reply.Files = []slack.File{{ID: "FRE11111"}}

		gomock.InOrder(
			mc.EXPECT().
				GetConversationRepliesContext(gomock.Any(), gomock.Any()).
				Return([]slack.Message{parent, reply}, false, "", nil),
			mc.EXPECT().DeleteFileContext(gomock.Any(), "FRE11111").Return(nil),
			mc.EXPECT().DeleteMessageContext(gomock.Any(), "CHY11111", "11.000000").Return("", "", nil),
			mc.EXPECT().DeleteFileContext(gomock.Any(), "FPA11111").Return(nil),
			mc.EXPECT().DeleteMessageContext(gomock.Any(), "CHY11111", "10.000000").Return("", "", nil),
		)

		rr, err := c.newMessage(parent, "CHY11111").Delete(ctx, DeleteOptions{Files: true, Replies: true})
		require.NoError(t, err)
		assert.Equal(t, 4, rr.Deleted())
		ids := make([]string, len(rr))
		for i := range rr {
			ids[i] = rr[i].ID
		}
		assert.Equal(t, []string{"FRE11111", "11.000000", "FPA11111", "10.000000"}, ids)
	})
	t.Run("already deleted message is skipped", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)

		mc.EXPECT().
			DeleteMessageContext(gomock.Any(), "CHY11111", "1.000000").
			Return("", "", slack.SlackErrorResponse{Err: "message_not_found"})

		rr, err := c.newMessage(testMsg("1.000000", "ULM11111", "gone"), "CHY11111").Delete(ctx, DeleteOptions{})
		require.NoError(t, err)
		require.Len(t, rr, 1)
		assert.Equal(t, StatusSkipped, rr[0].Status)
		assert.NoError(t, rr[0].Err)
	})
	t.Run("undeletable message fails the item, not the run", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)

		mc.EXPECT().
			DeleteMessageContext(gomock.Any(), "CHY11111", "1.000000").
			Return("", "", slack.SlackErrorResponse{Err: "cant_delete_message"})

		rr, err := c.newMessage(testMsg("1.000000", "ULM22222", "not mine"), "CHY11111").Delete(ctx, DeleteOptions{})
		require.NoError(t, err)
		require.Len(t, rr, 1)
		assert.Equal(t, StatusFailed, rr[0].Status)
		assert.Error(t, rr[0].Err)
	})
	t.Run("second rate limit is fatal", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)

		// delete budget is 2 attempts: the first rate limit response is
		// retried after the reported backoff, the second ends the run.
		mc.EXPECT().
			DeleteMessageContext(gomock.Any(), "CHY11111", "1.000000").
			Return("", "", &slack.RateLimitedError{RetryAfter: time.Millisecond}).
			Times(2)

		rr, err := c.newMessage(testMsg("1.000000", "ULM11111", "bye"), "CHY11111").Delete(ctx, DeleteOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, network.ErrRetryFailed)
		assert.Equal(t, 0, rr.Deleted())
	})
	t.Run("reply listing failure aborts the cascade", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)

		parent := testMsg("10.000000", "ULM11111", "parent")
		parent.ReplyCount = 1
		parent.ThreadTimestamp = parent.Timestamp

		mc.EXPECT().
			GetConversationRepliesContext(gomock.Any(), gomock.Any()).
			Return(nil, false, "", errors.New("everything is on fire"))

		_, err := c.newMessage(parent, "CHY11111").Delete(ctx, DeleteOptions{Replies: true})
		assert.Error(t, err)
	})
}

func TestFile_Delete(t *testing.T) {
	ctx := context.Background()
	t.Run("deleted", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)

		mc.EXPECT().DeleteFileContext(gomock.Any(), "FOO11111").Return(nil)

		rr, err := c.newFile(slack.File{ID: "FOO11111"}).Delete(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, rr.Deleted())
	})
	t.Run("gone file variants are skipped", func(t *testing.T) {
		for _, apiErr := range []string{"file_not_found", "file_deleted"} {
			t.Run(apiErr, func(t *testing.T) {
				mc := NewmockSlacker(gomock.NewController(t))
				c := testCleaner(mc)

				mc.EXPECT().
					DeleteFileContext(gomock.Any(), "FOO11111").
					Return(slack.SlackErrorResponse{Err: apiErr})

				rr, err := c.newFile(slack.File{ID: "FOO11111"}).Delete(ctx)
				require.NoError(t, err)
				assert.Equal(t, 1, rr.Skipped())
			})
		}
	})
}

func TestCleaner_DeleteMessages(t *testing.T) {
	ctx := context.Background()
	t.Run("drains the sequence, counting outcomes", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)
		conv := Conversation{Channel: slack.Channel{GroupConversation: slack.GroupConversation{Conversation: slack.Conversation{ID: "CHY11111"}}}, c: c}

		mc.EXPECT().
			GetConversationHistoryContext(gomock.Any(), gomock.Any()).
			Return(histResp(false, "",
				testMsg("3.000000", "ULM11111", "ok"),
				testMsg("2.000000", "ULM11111", "gone"),
				testMsg("1.000000", "ULM22222", "not mine"),
			), nil)
		mc.EXPECT().DeleteMessageContext(gomock.Any(), "CHY11111", "3.000000").Return("", "", nil)
		mc.EXPECT().DeleteMessageContext(gomock.Any(), "CHY11111", "2.000000").Return("", "", slack.SlackErrorResponse{Err: "message_not_found"})
		mc.EXPECT().DeleteMessageContext(gomock.Any(), "CHY11111", "1.000000").Return("", "", slack.SlackErrorResponse{Err: "cant_delete_message"})

		var reported int
		rr, err := c.DeleteMessages(ctx, conv.Messages(ctx), DeleteOptions{}, func(Result) { reported++ })
		require.NoError(t, err)
		assert.Equal(t, 1, rr.Deleted())
		assert.Equal(t, 1, rr.Skipped())
		assert.Equal(t, 1, rr.Failed())
		assert.Equal(t, 3, reported)
	})
	t.Run("listing error stops the run", func(t *testing.T) {
		mc := NewmockSlacker(gomock.NewController(t))
		c := testCleaner(mc)
		conv := Conversation{Channel: slack.Channel{GroupConversation: slack.GroupConversation{Conversation: slack.Conversation{ID: "CHY11111"}}}, c: c}

		mc.EXPECT().
			GetConversationHistoryContext(gomock.Any(), gomock.Any()).
			Return(&slack.GetConversationHistoryResponse{
				SlackResponse: slack.SlackResponse{Ok: false, Error: "invalid_auth"},
			}, nil)

		rr, err := c.DeleteMessages(ctx, conv.Messages(ctx), DeleteOptions{}, nil)
		assert.Error(t, err)
		assert.Empty(t, rr)
	})
}

func TestResults_String(t *testing.T) {
	rr := Results{
		{Kind: EntityMessage, ChannelID: "CHY11111", ID: "1.000000", Status: StatusDeleted},
		{Kind: EntityFile, ID: "FOO11111", Status: StatusSkipped},
		{Kind: EntityMessage, ChannelID: "CHY11111", ID: "2.000000", Status: StatusFailed, Err: errors.New("nope")},
	}
	assert.Equal(t, "deleted: 1, skipped: 1, failed: 1", rr.String())
	assert.Equal(t, "message CHY11111:2.000000 failed: nope", rr[2].String())
}
