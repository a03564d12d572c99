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

// In this file: users related code.

import (
	"context"
	"runtime/trace"

	"github.com/rusq/slack"

	"github.com/rusq/slackclean/internal/network"
	"github.com/rusq/slackclean/internal/structures"
)

// fetchUsers fetches the workspace users and builds the run-scoped
// id→user index.
func (c *Cleaner) fetchUsers(ctx context.Context) error {
	ctx, task := trace.NewTask(ctx, "fetchUsers")
	defer task.End()

	var users []slack.User
	if err := network.WithRetry(ctx, c.lim.tier2, c.cfg.limits.Tier2.Retries, func() error {
		var err error
		users, err = c.client.GetUsersContext(ctx)
		return err
	}); err != nil {
		return err
	}

	c.userIdx = structures.NewUserIndex(users)
	c.users = make([]User, len(users))
	for i := range users {
		c.users[i] = User{User: users[i]}
	}
	c.lg.DebugContext(ctx, "collected users", "count", len(users))
	return nil
}

// Users returns the users collected on initialisation.
func (c *Cleaner) Users() []User {
	return c.users
}

// Me returns the user the session is authenticated as.
func (c *Cleaner) Me() (User, bool) {
	if c.wspInfo == nil {
		return User{}, false
	}
	u, ok := c.userIdx[c.wspInfo.UserID]
	if !ok {
		return User{}, false
	}
	return User{User: *u}, true
}

// ResolveUser resolves the user id through the run-scoped index.  Unknown
// ids yield a dummy user, so that the caller does not have to treat
// deactivated or external users specially.
func (c *Cleaner) ResolveUser(id string) User {
	if u, ok := c.userIdx[id]; ok {
		return User{User: *u}
	}
	c.lg.Debug("user not found, generating dummy one", "user", id)
	return dummyUser(id)
}

// dummyUser returns a placeholder user with all name attributes set to the
// id.
func dummyUser(id string) User {
	return User{User: slack.User{
		ID:       id,
		Name:     id,
		RealName: id,
		Profile: slack.UserProfile{
			RealName:    id,
			DisplayName: id,
		},
	}}
}
