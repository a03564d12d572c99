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

// In this file: entity wrappers.  Each wrapper binds the raw API snapshot
// to the operations meaningful for that entity kind, and resolves id
// back-references (author, uploader) through the run-scoped user index.

import (
	"fmt"
	"time"

	"github.com/rusq/slack"

	"github.com/rusq/slackclean/internal/structures"
)

// User is a user snapshot.  It is fetched once per run and is a read-only
// reference.
type User struct {
	slack.User
}

// Bot reports whether the user is a bot or an app user.
func (u User) Bot() bool {
	return u.IsBot || u.IsAppUser
}

// Email returns the user's email address, if the token scope allows it,
// otherwise an empty string.
func (u User) Email() string {
	return u.Profile.Email
}

func (u User) String() string {
	return fmt.Sprintf("%s (%s) %s", u.Name, u.ID, u.RealName)
}

// Conversation is a handle for a channel, group, mpim or im, used to
// request message and file listings.  It owns no messages.
type Conversation struct {
	slack.Channel

	c *Cleaner
}

// Kind of the conversation.
type Kind string

const (
	KindPublic  Kind = "public"
	KindPrivate Kind = "private"
	KindIM      Kind = "im"
	KindMPIM    Kind = "mpim"
)

// Kind returns the conversation kind.
func (ch Conversation) Kind() Kind {
	switch {
	case ch.IsIM:
		return KindIM
	case ch.IsMpIM:
		return KindMPIM
	case ch.IsPrivate:
		return KindPrivate
	default:
		return KindPublic
	}
}

func (ch Conversation) String() string {
	if ch.Name == "" {
		return ch.ID
	}
	return ch.Name
}

// Message is a transient message value materialised from one page of API
// results.  The timestamp acts as the unique identifier within the
// conversation.
type Message struct {
	slack.Message
	// ChannelID is the ID of the conversation the message belongs to.
	ChannelID string

	c *Cleaner
}

func (c *Cleaner) newMessage(m slack.Message, channelID string) Message {
	return Message{Message: m, ChannelID: channelID, c: c}
}

// TS returns the message timestamp string, i.e. "1638494510.037400".
func (m Message) TS() string {
	return m.Timestamp
}

// Time returns the message timestamp as time.Time.
func (m Message) Time() time.Time {
	t, err := structures.ParseSlackTS(m.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Author resolves the message author through the run-scoped user index.
// For bot messages without a user id, a dummy user is returned.
func (m Message) Author() User {
	if m.User == "" {
		return dummyUser(m.BotID)
	}
	return m.c.ResolveUser(m.User)
}

// Bot reports whether the message was written by a bot.
func (m Message) Bot() bool {
	return m.SubType == "bot_message" || m.BotID != ""
}

// Pinned reports whether the message is pinned.
func (m Message) Pinned() bool {
	return len(m.PinnedTo) > 0
}

// HasThread reports whether the message is a thread parent with replies.
func (m Message) HasThread() bool {
	return m.ReplyCount > 0 && !m.IsThreadReply()
}

// IsThreadReply reports whether the message is a reply within a thread.
func (m Message) IsThreadReply() bool {
	return m.ThreadTimestamp != "" && m.ThreadTimestamp != m.Timestamp
}

// Attachments returns the files attached to the message.
func (m Message) Attachments() []File {
	var ff = make([]File, 0, len(m.Files))
	for i := range m.Files {
		ff = append(ff, m.c.newFile(m.Files[i]))
	}
	return ff
}

func (m Message) String() string {
	// truncate on a rune boundary, the text ends up in logs.
	text := m.Text
	if r := []rune(text); len(r) > 20 {
		text = string(r[:20])
	}
	return fmt.Sprintf("%s:%s (%s): %s", m.ChannelID, m.Timestamp, m.User, text)
}

// File is a file snapshot.  It is independently deletable from the
// messages that reference it.
type File struct {
	slack.File

	c *Cleaner
}

func (c *Cleaner) newFile(f slack.File) File {
	return File{File: f, c: c}
}

// Uploader resolves the user that created the file.
func (f File) Uploader() User {
	return f.c.ResolveUser(f.User)
}

// Time returns the file creation time.
func (f File) Time() time.Time {
	return f.Created.Time()
}

func (f File) String() string {
	return f.Name
}
