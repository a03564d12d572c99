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

// In this file: the lazy file listing pipeline.  Unlike conversation
// history, files.list is a page-numbered API, the end of pagination is
// page >= pages in the paging block.

import (
	"context"
	"fmt"
	"iter"
	"runtime/trace"

	"github.com/rusq/slack"

	"github.com/rusq/slackclean/internal/network"
)

// FilesOfUser limits the file listing to files uploaded by the given
// user.
func FilesOfUser(u User) ListOption {
	return func(o *listOptions) {
		o.fileUser = u.ID
	}
}

// Files returns a lazy sequence of all files visible to the token,
// optionally limited by time range and uploader.  Same laziness and
// termination contract as Messages.
func (c *Cleaner) Files(ctx context.Context, opt ...ListOption) iter.Seq2[File, error] {
	return c.files(ctx, "", opt...)
}

// Files returns the lazy file sequence of this single conversation.
func (ch Conversation) Files(ctx context.Context, opt ...ListOption) iter.Seq2[File, error] {
	return ch.c.files(ctx, ch.ID, opt...)
}

func (c *Cleaner) files(ctx context.Context, channelID string, opt ...ListOption) iter.Seq2[File, error] {
	var options listOptions
	options.apply(opt)
	return func(yield func(File, error) bool) {
		ctx, task := trace.NewTask(ctx, "Files")
		defer task.End()
		c.lg.DebugContext(ctx, "listing files", "channel", channelID, "user", options.fileUser)

		page := 1
		for {
			params := slack.GetFilesParameters{
				User:    options.fileUser,
				Channel: channelID,
				Count:   c.cfg.limits.Request.Files,
				Page:    page,
			}
			if !options.oldest.IsZero() {
				params.TimestampFrom = slack.JSONTime(options.oldest.Unix())
			}
			if !options.latest.IsZero() {
				params.TimestampTo = slack.JSONTime(options.latest.Unix())
			}

			var (
				files  []slack.File
				paging *slack.Paging
			)
			if err := network.WithRetry(ctx, c.lim.tier2, c.cfg.limits.Tier2.Retries, func() error {
				var err error
				trace.WithRegion(ctx, "GetFilesContext", func() {
					files, paging, err = c.client.GetFilesContext(ctx, params)
				})
				return err
			}); err != nil {
				yield(File{}, fmt.Errorf("files list: %w", err))
				return
			}

			for i := range files {
				if !yield(c.newFile(files[i]), nil) {
					return
				}
			}

			if paging == nil || paging.Page >= paging.Pages {
				return
			}
			page = paging.Page + 1
		}
	}
}
