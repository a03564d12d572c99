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

// In this file: cleaner config.

import (
	"github.com/rusq/slackclean/internal/network"
)

// config is the option set for the Cleaner.
type config struct {
	limits       network.Limits
	channelTypes []string
}

// defConfig is the default config used when initialising the cleaner
// instance.
var defConfig = config{
	limits:       network.DefLimits,
	channelTypes: AllChanTypes,
}
