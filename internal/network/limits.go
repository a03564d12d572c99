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
	"github.com/go-playground/validator/v10"
)

// Limits contains the per-tier API limits and the retry budgets.  Zero
// value is not usable, use [DefLimits] or construct your own and call
// Validate on it.
type Limits struct {
	// Tier2 limits apply to users.list and files.list.
	Tier2 TierLimit `json:"tier_2" validate:"required"`
	// Tier3 limits apply to conversations.list, conversations.history,
	// conversations.replies, chat.delete and files.delete.
	Tier3 TierLimit `json:"tier_3" validate:"required"`
	// Request holds the per-request page sizes.
	Request RequestLimit `json:"per_request" validate:"required"`
	// DeleteRetries is the number of attempts for a single delete call.
	// The value of 2 means one retry after the backoff reported by the
	// rate limit error; a second rate limit response is fatal.
	DeleteRetries int `json:"delete_retries" validate:"gte=1,lte=5"`
}

// TierLimit is a rate limit configuration for a single API tier.
type TierLimit struct {
	// Burst is the limiter burst in requests per second.
	Burst uint `json:"burst" validate:"gte=1"`
	// Boost is added to the base tier events per minute.
	Boost uint `json:"boost"`
	// Retries is the number of attempts for a listing call on this tier.
	Retries int `json:"retries" validate:"gte=1,lte=500"`
}

// RequestLimit defines the page sizes for the listing requests.
type RequestLimit struct {
	// Conversations is the number of conversations per conversations.list
	// request.
	Conversations int `json:"conversations" validate:"gt=0,lte=1000"`
	// Messages is the number of messages per conversations.history request.
	Messages int `json:"messages" validate:"gt=0,lte=1000"`
	// Replies is the number of messages per conversations.replies request.
	Replies int `json:"replies" validate:"gt=0,lte=1000"`
	// Files is the number of files per files.list request.
	Files int `json:"files" validate:"gt=0,lte=200"`
}

// DefLimits are the default limits.
var DefLimits = Limits{
	Tier2: TierLimit{
		Burst:   1,
		Boost:   20,
		Retries: 3,
	},
	Tier3: TierLimit{
		Burst:   1,
		Boost:   120,
		Retries: 3,
	},
	Request: RequestLimit{
		Conversations: 100,
		Messages:      200, // recommended value for conversations.history
		Replies:       200,
		Files:         100,
	},
	DeleteRetries: 2,
}

var validate = validator.New()

// Validate validates the limits.
func (o *Limits) Validate() error {
	return validate.Struct(o)
}
