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
	"log/slog"

	"github.com/rusq/slackclean/internal/network"
)

// Option is the signature of the option-setting function.
type Option func(*Cleaner)

// WithLogger sets the logger to use for the session.  If this option is
// not given, the default slog logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cleaner) {
		if l != nil {
			c.lg = l
		}
	}
}

// WithLimits sets the API limits to use for the session.  If this option
// is not given, or the limits fail validation, the default limits are
// used.
func WithLimits(l network.Limits) Option {
	return func(c *Cleaner) {
		if l.Validate() == nil {
			c.cfg.limits = l
		}
	}
}

// WithSlackClient sets the Slack client to use for the session.  Used in
// tests to inject a mock client.
func WithSlackClient(cl Slacker) Option {
	return func(c *Cleaner) {
		c.client = cl
	}
}

// WithChannelTypes sets the types of conversations that the session
// collects on initialisation.  Defaults to AllChanTypes.
func WithChannelTypes(types ...string) Option {
	return func(c *Cleaner) {
		if len(types) > 0 {
			c.cfg.channelTypes = types
		}
	}
}
