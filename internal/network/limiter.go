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

package network

import (
	"time"

	"golang.org/x/time/rate"
)

// Tier is a rate limit Tier, in events per minute:
// https://api.slack.com/docs/rate-limits
//
// Only the tiers of the methods the cleaner calls are defined: Tier2
// covers users.list and files.list, Tier3 covers the conversations.*
// family, chat.delete and files.delete.
type Tier int

const (
	Tier2 Tier = 20
	Tier3 Tier = 50
)

// NewLimiter returns a throttler for the tier, with the boost added to
// the tier's base events per minute.
func NewLimiter(t Tier, burst uint, boost int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(every(t, boost)), int(burst))
}

func every(t Tier, boost int) time.Duration {
	return time.Minute / time.Duration(int(t)+int(boost))
}
