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
package structures

import (
	"github.com/rusq/slack"
)

// UserIndex is a mapping of user ID to the *slack.User.  It is populated
// once per run and is the only lookup table for author and uploader
// back-references.
type UserIndex map[string]*slack.User

// NewUserIndex creates a new UserIndex from slack Users slice.
func NewUserIndex(us []slack.User) UserIndex {
	var usermap = make(UserIndex, len(us))

	for i := range us {
		usermap[(us)[i].ID] = &us[i]
	}

	return usermap
}

// DisplayName tries to resolve the display name by ID.  If the display name
// is unavailable, it falls back to the Real Name, and then to the ID.
func (idx UserIndex) DisplayName(id string) string {
	return idx.userattr(id, func(user *slack.User) string {
		return nvl(user.Profile.DisplayName, user.RealName, id)
	})
}

func nvl(s string, ss ...string) string {
	if s != "" {
		return s
	}
	for _, alt := range ss {
		if alt != "" {
			return alt
		}
	}
	return ""
}

func (idx UserIndex) userattr(id string, fn func(user *slack.User) string) string {
	if idx == nil {
		return id
	}
	user, ok := idx[id]
	if !ok {
		return id
	}
	return fn(user)
}
