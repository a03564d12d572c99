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

// In this file: the cascading delete.  The deletion order is replies (and
// their files) first, depth-first, then the message's own files, then the
// message itself, so that a failure mid-cascade never leaves a parentless
// reply or an orphaned file reference.

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime/trace"
	"strings"

	"github.com/rusq/slackclean/internal/network"
	"github.com/rusq/slackclean/internal/structures"
)

// DeleteOptions control the cascade behaviour of Message.Delete.
type DeleteOptions struct {
	// Files deletes the attached files along with the message.
	Files bool
	// Replies deletes all thread replies before the message itself.
	Replies bool
}

// Status is the per-item outcome of a delete operation.
type Status int8

const (
	// StatusDeleted means the entity was deleted by this call.
	StatusDeleted Status = iota
	// StatusSkipped means the entity was already gone; success-equivalent
	// for safe re-runs.
	StatusSkipped
	// StatusFailed means the delete call failed for this item, e.g. due to
	// insufficient permissions; the bulk run continues.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDeleted:
		return "deleted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int8(s))
	}
}

// EntityKind identifies the kind of the deleted entity in a Result.
type EntityKind int8

const (
	EntityMessage EntityKind = iota
	EntityFile
)

func (k EntityKind) String() string {
	switch k {
	case EntityMessage:
		return "message"
	case EntityFile:
		return "file"
	default:
		return fmt.Sprintf("EntityKind(%d)", int8(k))
	}
}

// Result is the outcome of deleting one entity.
type Result struct {
	Kind      EntityKind
	ChannelID string // empty for files
	ID        string // message timestamp or file id
	Status    Status
	Err       error // nil unless Status is StatusFailed
}

func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(r.Kind.String())
	sb.WriteString(" ")
	if r.ChannelID != "" {
		sb.WriteString(r.ChannelID)
		sb.WriteString(":")
	}
	sb.WriteString(r.ID)
	sb.WriteString(" ")
	sb.WriteString(r.Status.String())
	if r.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(r.Err.Error())
	}
	return sb.String()
}

// Results is the per-item outcome list of a bulk or cascading delete.
type Results []Result

// Deleted returns the number of entities deleted.
func (rr Results) Deleted() int { return rr.count(StatusDeleted) }

// Skipped returns the number of entities that were already gone.
func (rr Results) Skipped() int { return rr.count(StatusSkipped) }

// Failed returns the number of per-item failures.
func (rr Results) Failed() int { return rr.count(StatusFailed) }

func (rr Results) count(s Status) int {
	var n int
	for _, r := range rr {
		if r.Status == s {
			n++
		}
	}
	return n
}

func (rr Results) String() string {
	return fmt.Sprintf("deleted: %d, skipped: %d, failed: %d", rr.Deleted(), rr.Skipped(), rr.Failed())
}

// Delete deletes the message, honouring the cascade options, and reports
// the per-item outcomes.  Individual failures (already deleted,
// insufficient permission) are recorded in the results and do not abort
// the cascade.  A non-nil error is returned only for conditions that make
// the whole run pointless: cancelled context, exhausted retry budget, or a
// failure to list the thread replies.
func (m Message) Delete(ctx context.Context, opt DeleteOptions) (Results, error) {
	ctx, task := trace.NewTask(ctx, "Message.Delete")
	defer task.End()

	var rr Results
	if opt.Replies && m.HasThread() {
		for reply, err := range m.Replies(ctx) {
			if err != nil {
				return rr, fmt.Errorf("listing replies of %s:%s: %w", m.ChannelID, m.Timestamp, err)
			}
			sub, err := reply.Delete(ctx, DeleteOptions{Files: opt.Files})
			rr = append(rr, sub...)
			if err != nil {
				return rr, err
			}
		}
	}
	if opt.Files {
		for i := range m.Files {
			res, err := m.c.deleteFile(ctx, m.Files[i].ID)
			if err != nil {
				return rr, err
			}
			rr = append(rr, res)
		}
	}
	res, err := m.c.deleteMessage(ctx, m.ChannelID, m.Timestamp)
	if err != nil {
		return rr, err
	}
	return append(rr, res), nil
}

// Delete deletes the file.  Not-found responses are success-equivalent.
func (f File) Delete(ctx context.Context) (Results, error) {
	res, err := f.c.deleteFile(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	return Results{res}, nil
}

// deleteMessage issues a single chat.delete call with the bounded
// rate-limit retry.
func (c *Cleaner) deleteMessage(ctx context.Context, channelID, ts string) (Result, error) {
	r := Result{Kind: EntityMessage, ChannelID: channelID, ID: ts}
	err := network.WithRetry(ctx, c.lim.tier3, c.cfg.limits.DeleteRetries, func() error {
		_, _, err := c.client.DeleteMessageContext(ctx, channelID, ts)
		return err
	})
	return c.classify(ctx, r, err, "message_not_found")
}

// deleteFile issues a single files.delete call with the bounded
// rate-limit retry.
func (c *Cleaner) deleteFile(ctx context.Context, fileID string) (Result, error) {
	r := Result{Kind: EntityFile, ID: fileID}
	err := network.WithRetry(ctx, c.lim.tier3, c.cfg.limits.DeleteRetries, func() error {
		return c.client.DeleteFileContext(ctx, fileID)
	})
	return c.classify(ctx, r, err, "file_not_found", "file_deleted")
}

// classify maps the delete call error to the per-item outcome.  Gone
// entities are success-equivalent; anything fatal to the run is returned
// as the error.
func (c *Cleaner) classify(ctx context.Context, r Result, err error, goneErrors ...string) (Result, error) {
	switch {
	case err == nil:
		r.Status = StatusDeleted
		c.lg.InfoContext(ctx, "deleted", "kind", r.Kind, "channel", r.ChannelID, "id", r.ID)
	case structures.IsAnySlackResponseError(err, goneErrors...):
		r.Status = StatusSkipped
		c.lg.InfoContext(ctx, "already gone", "kind", r.Kind, "channel", r.ChannelID, "id", r.ID)
	case errors.Is(err, network.ErrRetryFailed), ctx.Err() != nil:
		return r, fmt.Errorf("fatal error deleting %s %s: %w", r.Kind, r.ID, err)
	default:
		r.Status = StatusFailed
		r.Err = err
		c.lg.WarnContext(ctx, "delete failed", "kind", r.Kind, "channel", r.ChannelID, "id", r.ID, "error", err)
	}
	return r, nil
}

// DeleteMessages drives the cascading delete over the message sequence,
// collecting the per-item outcomes.  fn, if not nil, is called for each
// outcome as it happens (useful for progress reporting).  It stops early
// only on a fatal error, returning the outcomes collected so far.
func (c *Cleaner) DeleteMessages(ctx context.Context, seq iter.Seq2[Message, error], opt DeleteOptions, fn func(Result)) (Results, error) {
	var rr Results
	report := func(sub Results) {
		if fn != nil {
			for _, r := range sub {
				fn(r)
			}
		}
	}
	for m, err := range seq {
		if err != nil {
			return rr, err
		}
		sub, err := m.Delete(ctx, opt)
		rr = append(rr, sub...)
		report(sub)
		if err != nil {
			return rr, err
		}
	}
	return rr, nil
}
