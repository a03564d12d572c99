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
package fixtures

// ChannelsJSON is a conversations.list response payload with a public
// channel, a private channel and a DM.
const ChannelsJSON = `[
	{
		"id": "CHY11111",
		"name": "general",
		"is_channel": true,
		"is_group": false,
		"is_im": false,
		"is_mpim": false,
		"is_private": false,
		"is_archived": false,
		"name_normalized": "general"
	},
	{
		"id": "GHY22222",
		"name": "secret-plans",
		"is_channel": false,
		"is_group": true,
		"is_im": false,
		"is_mpim": false,
		"is_private": true,
		"is_archived": false,
		"name_normalized": "secret-plans"
	},
	{
		"id": "DHY33333",
		"name": "",
		"is_channel": false,
		"is_group": false,
		"is_im": true,
		"is_mpim": false,
		"is_private": true,
		"is_archived": false,
		"user": "ULM22222"
	}
]`
