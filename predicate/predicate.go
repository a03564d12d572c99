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

// Package predicate provides composable entity filters for the cleaning
// pipeline.  Predicates are pure functions over already-fetched
// snapshots, they never make network calls.
package predicate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rusq/slackclean"
)

// Predicate reports whether the entity should be included.
type Predicate[T any] func(T) bool

// And returns a predicate that is true when all of pp are true.  It
// short-circuits on the first false.  And() with no arguments is true.
func And[T any](pp ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range pp {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that is true when any of pp is true.  It
// short-circuits on the first true.  Or() with no arguments is false.
func Or[T any](pp ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range pp {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not negates the predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// compile compiles the pattern as a case-insensitive whole-string match.
func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?i)^` + pattern + `$`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// MatchText returns a predicate matching the message text against the
// pattern.  The pattern is case-insensitive and must match the whole
// text.
func MatchText(pattern string) (Predicate[slackclean.Message], error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(m slackclean.Message) bool {
		return re.MatchString(m.Text)
	}, nil
}

// MatchName returns a predicate matching the file name against the
// pattern, case-insensitive, whole string.
func MatchName(pattern string) (Predicate[slackclean.File], error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(f slackclean.File) bool {
		return re.MatchString(f.Name) || re.MatchString(f.Title)
	}, nil
}

// MatchUser returns a predicate matching any of the user's identifying
// attributes (id, login, real name, display name, email) against the
// pattern, case-insensitive, whole string.
func MatchUser(pattern string) (Predicate[slackclean.User], error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(u slackclean.User) bool {
		return re.MatchString(u.ID) ||
			re.MatchString(u.Name) ||
			re.MatchString(u.RealName) ||
			re.MatchString(u.Profile.DisplayName) ||
			re.MatchString(u.Profile.Email)
	}, nil
}

// MatchChannelName returns a predicate matching the conversation name
// against the pattern, case-insensitive, whole string.  DMs carry the
// name of the user on the other side.
func MatchChannelName(pattern string) (Predicate[slackclean.Conversation], error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(c slackclean.Conversation) bool {
		return re.MatchString(c.Name)
	}, nil
}

// ByUser returns a predicate matching messages authored by the given
// user.  Comparison is by user id, bot messages carrying no user id
// never match.
func ByUser(u slackclean.User) Predicate[slackclean.Message] {
	return func(m slackclean.Message) bool {
		return m.User != "" && m.User == u.ID
	}
}

// ByUsers returns a predicate matching messages authored by any of the
// given users.
func ByUsers(uu ...slackclean.User) Predicate[slackclean.Message] {
	ids := make(map[string]struct{}, len(uu))
	for _, u := range uu {
		ids[u.ID] = struct{}{}
	}
	return func(m slackclean.Message) bool {
		if m.User == "" {
			return false
		}
		_, ok := ids[m.User]
		return ok
	}
}

// InConversation returns a predicate matching messages that belong to
// the given conversation.
func InConversation(c slackclean.Conversation) Predicate[slackclean.Message] {
	return func(m slackclean.Message) bool {
		return m.ChannelID == c.ID
	}
}

// InConversations returns a predicate matching messages that belong to
// any of the given conversations.
func InConversations(cc ...slackclean.Conversation) Predicate[slackclean.Message] {
	ids := make(map[string]struct{}, len(cc))
	for _, c := range cc {
		ids[c.ID] = struct{}{}
	}
	return func(m slackclean.Message) bool {
		_, ok := ids[m.ChannelID]
		return ok
	}
}

// UploadedBy returns a predicate matching files uploaded by the given
// user.
func UploadedBy(u slackclean.User) Predicate[slackclean.File] {
	return func(f slackclean.File) bool {
		return f.User != "" && f.User == u.ID
	}
}

// IsBot matches messages written by bots or apps.
func IsBot(m slackclean.Message) bool {
	return m.Bot()
}

// IsNotPinned matches messages that are safe to delete without losing a
// pin.
func IsNotPinned(m slackclean.Message) bool {
	return !m.Pinned()
}

// Timed is an entity with a point-in-time, i.e. a message or a file.
type Timed interface {
	Time() time.Time
}

// TimeRange returns a predicate matching entities within [oldest,
// latest], bounds inclusive.  A zero bound is open.
func TimeRange[T Timed](oldest, latest time.Time) Predicate[T] {
	if !oldest.IsZero() && !latest.IsZero() && oldest.After(latest) {
		oldest, latest = latest, oldest
	}
	return func(v T) bool {
		t := v.Time()
		if !oldest.IsZero() && t.Before(oldest) {
			return false
		}
		if !latest.IsZero() && t.After(latest) {
			return false
		}
		return true
	}
}
