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

// UsersJSON is a users.list response payload with a human, a bot and an
// app user.
const UsersJSON = `[
	{
		"id": "ULM11111",
		"team_id": "THY11111",
		"name": "alice",
		"real_name": "Alice Arkham",
		"profile": {
			"real_name": "Alice Arkham",
			"display_name": "al",
			"email": "alice@example.org"
		},
		"is_bot": false,
		"is_app_user": false
	},
	{
		"id": "ULM22222",
		"team_id": "THY11111",
		"name": "bob",
		"real_name": "Bob Builder",
		"profile": {
			"real_name": "Bob Builder",
			"display_name": ""
		},
		"is_bot": false,
		"is_app_user": false
	},
	{
		"id": "ULM33333",
		"team_id": "THY11111",
		"name": "beepboop",
		"real_name": "Beep Boop",
		"profile": {
			"real_name": "Beep Boop",
			"display_name": "beep"
		},
		"is_bot": true,
		"is_app_user": false
	}
]`
