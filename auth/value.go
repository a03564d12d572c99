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
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

var _ Provider = ValueAuth{}

// ValueAuth stores Slack credentials.
type ValueAuth struct {
	simpleProvider
}

// NewValueAuth creates a provider from the token and, for client (xoxc-)
// tokens, the d= session cookie value.  The cookie may be empty for bot and
// user OAuth tokens.
func NewValueAuth(token string, cookie string) (ValueAuth, error) {
	if token == "" {
		return ValueAuth{}, ErrNoToken
	}
	if strings.HasPrefix(token, clientTokenPrefix) && cookie == "" {
		return ValueAuth{}, ErrNoCookies
	}
	s := simpleProvider{Token: token}
	if cookie != "" {
		s.Cookie = []*http.Cookie{
			makeCookie("d", cookie),
			makeCookie("d-s", fmt.Sprintf("%d", time.Now().Unix()-10)),
		}
	}
	return ValueAuth{s}, s.Validate()
}

func (ValueAuth) Type() Type {
	return TypeValue
}

func makeCookie(key, val string) *http.Cookie {
	return &http.Cookie{
		Name:    key,
		Value:   val,
		Path:    "/",
		Domain:  ".slack.com",
		Expires: time.Now().AddDate(10, 0, 0),
		Secure:  true,
	}
}
