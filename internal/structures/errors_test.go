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
	"fmt"
	"io"
	"testing"

	"github.com/rusq/slack"
)

func TestIsSlackResponseError(t *testing.T) {
	type args struct {
		e error
		s string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			"matching error",
			args{
				slack.SlackErrorResponse{Err: "message_not_found"},
				"message_not_found",
			},
			true,
		},
		{
			"different error text",
			args{
				slack.SlackErrorResponse{Err: "cant_delete_message"},
				"message_not_found",
			},
			false,
		},
		{
			"different error type",
			args{
				io.EOF,
				"message_not_found",
			},
			false,
		},
		{
			"wrapped error",
			args{
				fmt.Errorf("delete: %w", slack.SlackErrorResponse{Err: "file_deleted"}),
				"file_deleted",
			},
			true,
		},
		{
			"case insensitive",
			args{
				slack.SlackErrorResponse{Err: "Message_Not_Found"},
				"message_not_found",
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSlackResponseError(tt.args.e, tt.args.s); got != tt.want {
				t.Errorf("IsSlackResponseError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAnySlackResponseError(t *testing.T) {
	err := slack.SlackErrorResponse{Err: "file_deleted"}
	if !IsAnySlackResponseError(err, "file_not_found", "file_deleted") {
		t.Error("expected true for matching error in the set")
	}
	if IsAnySlackResponseError(err, "message_not_found") {
		t.Error("expected false for non-matching error")
	}
	if IsAnySlackResponseError(io.EOF, "file_deleted") {
		t.Error("expected false for non-slack error")
	}
}
