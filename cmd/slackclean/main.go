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

// Command slackclean bulk-deletes messages and files from Slack
// conversations, with filters on time range, author, message text and bot
// origin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"
	"github.com/rusq/tracer"
	"github.com/schollz/progressbar/v3"

	"github.com/rusq/slackclean"
	"github.com/rusq/slackclean/auth"
	"github.com/rusq/slackclean/predicate"
)

const AppName = "Slack Clean"

var (
	version = "dev"
	builtOn = "just now"

	versionSig = fmt.Sprintf("%s %s (built %s)", AppName, version, builtOn)
)

var _ = godotenv.Load() // load environment variables from .env, if present

type Params struct {
	Token  string
	Cookie string

	ListChannels bool
	ListUsers    bool

	Channels strlist
	UserRe   string
	TextRe   string
	After    timeflag
	Before   timeflag
	Bots     bool
	KeepPins bool

	WithReplies bool
	WithFiles   bool
	DryRun      bool

	Version bool
	Verbose bool
	Trace   string
}

func main() {
	p := parseCmdLine()
	if p.Version {
		fmt.Println(versionSig)
		return
	}
	initLog(p.Verbose)

	if err := run(context.Background(), p); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// strlist is a comma-separated list flag.
type strlist []string

func (c *strlist) Set(val string) error {
	*c = strings.Split(val, ",")
	return nil
}

func (c *strlist) String() string {
	return strings.Join(*c, ",")
}

// timeflag is a date or datetime flag.
type timeflag struct {
	t time.Time
}

func (tf *timeflag) Set(val string) error {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, val); err == nil {
			tf.t = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC3339", val)
}

func (tf *timeflag) String() string {
	if tf.t.IsZero() {
		return ""
	}
	return tf.t.Format(time.RFC3339)
}

func parseCmdLine() Params {
	var p Params
	{
		flag.StringVar(&p.Token, "token", osenv.Secret("SLACK_TOKEN", ""), "slack `token` (xoxp-, xoxb- or xoxc-)")
		flag.StringVar(&p.Cookie, "cookie", osenv.Secret("SLACK_COOKIE", ""), "d= session `cookie`, required for xoxc- tokens")

		flag.BoolVar(&p.ListChannels, "list-channels", false, "list conversations and exit")
		flag.BoolVar(&p.ListUsers, "list-users", false, "list users and exit")

		flag.Var(&p.Channels, "channel", "comma separated `names` or IDs of conversations to clean")
		flag.StringVar(&p.UserRe, "user", "", "delete only messages of users matching the `pattern`")
		flag.StringVar(&p.TextRe, "msg", "", "delete only messages with text matching the `pattern`")
		flag.Var(&p.After, "after", "delete only messages after the `date`, inclusive")
		flag.Var(&p.Before, "before", "delete only messages before the `date`, inclusive")
		flag.BoolVar(&p.Bots, "bots", false, "delete only bot messages")
		flag.BoolVar(&p.KeepPins, "keep-pinned", true, "do not delete pinned messages")

		flag.BoolVar(&p.WithReplies, "replies", true, "delete thread replies along with the parent")
		flag.BoolVar(&p.WithFiles, "files", true, "delete attached files along with the message")
		flag.BoolVar(&p.DryRun, "dry", false, "dry-run, print what would be deleted")

		flag.BoolVar(&p.Version, "v", false, "print version and exit")
		flag.BoolVar(&p.Verbose, "verbose", osenv.Value("DEBUG", "") != "", "verbose output")
		flag.StringVar(&p.Trace, "trace", osenv.Value("TRACE_FILE", ""), "trace `filename`")

		flag.Parse()
	}
	return p
}

func initLog(verbose bool) {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func run(ctx context.Context, p Params) error {
	if p.Trace != "" {
		tr := tracer.New(p.Trace)
		if err := tr.Start(); err != nil {
			return err
		}
		defer tr.End()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	prov, err := auth.NewValueAuth(p.Token, p.Cookie)
	if err != nil {
		return fmt.Errorf("credentials error: %w", err)
	}

	done, finished := spinner("Connecting to Slack . . .", 0)
	cl, err := slackclean.New(ctx, prov)
	close(done)
	<-finished
	if err != nil {
		return err
	}

	switch {
	case p.ListChannels:
		return listChannels(os.Stdout, cl)
	case p.ListUsers:
		return listUsers(os.Stdout, cl)
	}
	return clean(ctx, cl, p)
}

func listChannels(w io.Writer, cl *slackclean.Cleaner) error {
	hdr := color.New(color.Bold)
	hdr.Fprintf(w, "%-12s  %-8s  %s\n", "ID", "KIND", "NAME")
	for _, conv := range cl.Conversations() {
		fmt.Fprintf(w, "%-12s  %-8s  %s\n", conv.ID, conv.Kind(), conv.Name)
	}
	return nil
}

func listUsers(w io.Writer, cl *slackclean.Cleaner) error {
	hdr := color.New(color.Bold)
	hdr.Fprintf(w, "%-12s  %-20s  %s\n", "ID", "LOGIN", "NAME")
	for _, u := range cl.Users() {
		name := u.RealName
		if u.Bot() {
			name += " (bot)"
		}
		fmt.Fprintf(w, "%-12s  %-20s  %s\n", u.ID, u.Name, name)
	}
	return nil
}

// filter assembles the message predicate from the command line flags.
func filter(cl *slackclean.Cleaner, p Params) (predicate.Predicate[slackclean.Message], error) {
	var pp []predicate.Predicate[slackclean.Message]
	if p.UserRe != "" {
		um, err := predicate.MatchUser(p.UserRe)
		if err != nil {
			return nil, err
		}
		var matched []slackclean.User
		for _, u := range cl.Users() {
			if um(u) {
				matched = append(matched, u)
			}
		}
		if len(matched) == 0 {
			return nil, fmt.Errorf("no users match %q", p.UserRe)
		}
		pp = append(pp, predicate.ByUsers(matched...))
	}
	if p.TextRe != "" {
		tm, err := predicate.MatchText(p.TextRe)
		if err != nil {
			return nil, err
		}
		pp = append(pp, tm)
	}
	if p.Bots {
		pp = append(pp, predicate.IsBot)
	}
	if p.KeepPins {
		pp = append(pp, predicate.IsNotPinned)
	}
	return predicate.And(pp...), nil
}

func clean(ctx context.Context, cl *slackclean.Cleaner, p Params) error {
	if len(p.Channels) == 0 {
		return errors.New("no conversations selected, use -channel (or -list-channels to see what's there)")
	}
	var convs []slackclean.Conversation
	for _, name := range p.Channels {
		conv, ok := cl.Lookup(name)
		if !ok {
			return fmt.Errorf("no such conversation: %q", name)
		}
		convs = append(convs, conv)
	}

	pred, err := filter(cl, p)
	if err != nil {
		return err
	}

	listOpts := []slackclean.ListOption{slackclean.WithFilter(pred)}
	if !p.After.t.IsZero() {
		listOpts = append(listOpts, slackclean.Oldest(p.After.t))
	}
	if !p.Before.t.IsZero() {
		listOpts = append(listOpts, slackclean.Latest(p.Before.t))
	}
	// replies are spliced into the listing only for the dry-run display;
	// the real run cascades over them at delete time.
	if p.WithReplies && p.DryRun {
		listOpts = append(listOpts, slackclean.WithReplies())
	}

	seq := cl.Messages(ctx, convs, listOpts...)
	if p.DryRun {
		var n int64
		for m, err := range seq {
			if err != nil {
				return err
			}
			fmt.Printf("would delete %s:%s  %-20s  %s\n", m.ChannelID, m.TS(), m.Author().Name, humanize.Time(m.Time()))
			n++
		}
		fmt.Printf("dry-run: %s messages would be deleted\n", humanize.Comma(n))
		return nil
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Cleaning . . ."),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSpinnerType(9),
	)
	results, err := cl.DeleteMessages(ctx, seq, slackclean.DeleteOptions{
		Files:   p.WithFiles,
		Replies: p.WithReplies,
	}, func(slackclean.Result) {
		bar.Add(1)
	})
	bar.Finish()
	fmt.Println()
	fmt.Println(results.String())
	return err
}

// spinner starts a fake spinner and returns a channel that must be closed
// once the operation completes. interval is the interval between
// iterations, defaulting to 50ms.
func spinner(title string, interval time.Duration) (chan<- struct{}, <-chan struct{}) {
	if interval == 0 {
		interval = 50 * time.Millisecond
	}
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		bar := progressbar.NewOptions(
			-1,
			progressbar.OptionSetDescription(title),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSpinnerType(9),
		)
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-done:
				bar.Finish()
				fmt.Println()
				close(finished)
				return
			case <-t.C:
				bar.Add(1)
			}
		}
	}()
	return done, finished
}
