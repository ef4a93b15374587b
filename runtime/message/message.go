// Package message splits raw SCPI wire text into individual command
// units and rebuilds canonical outgoing messages. It works purely on
// separators and query markers; resolving command names is the
// registry's job.
package message

import "strings"

// DefaultSep separates commands within one message line.
const DefaultSep = ";"

// DefaultEOL terminates message lines.
const DefaultEOL = "\n"

// Request is one parsed command unit of a composite message.
type Request struct {
	Name  string // command name text, unresolved
	Args  string // trailing argument text, possibly empty
	Query bool   // true iff a '?' marker was present
}

// Split tokenizes a composite message such as "*RST;*IDN?;*CLS" into its
// command units in source order. Empty pieces produced by doubled
// separators are dropped.
func Split(raw, sep string) []Request {
	if sep == "" {
		sep = DefaultSep
	}
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, sep)
	raw = strings.TrimSuffix(raw, sep)

	var requests []Request
	for _, piece := range strings.Split(raw, sep) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		query := strings.Contains(piece, "?")
		if query {
			piece = strings.Replace(piece, "?", "", 1)
		}

		name, args := piece, ""
		if i := strings.IndexAny(piece, " \t"); i >= 0 {
			name, args = piece[:i], strings.TrimSpace(piece[i:])
		}

		requests = append(requests, Request{
			Name:  strings.TrimSpace(name),
			Args:  args,
			Query: query,
		})
	}
	return requests
}

// Options controls Sanitize. StrictQuery forces every query onto a line
// of its own, which is the safe default for instruments that answer one
// query per line; plain write commands are still batched with Sep.
type Options struct {
	EOL         string
	Sep         string
	StrictQuery bool
}

// DefaultOptions returns the Sanitize defaults: newline EOL, semicolon
// separator, strict query grouping.
func DefaultOptions() *Options {
	return &Options{
		EOL:         DefaultEOL,
		Sep:         DefaultSep,
		StrictQuery: true,
	}
}

// Sanitize flattens raw message strings into the individual commands,
// the sub-list of queries, and the canonical re-serialized message to
// put on the wire. Input strings may themselves contain several
// EOL-separated lines.
//
//	Sanitize([]string{"*rst", "*idn?;*cls"}, nil)
//	// commands ["*rst" "*idn?" "*cls"], queries ["*idn?"],
//	// canonical "*rst\n*idn?\n*cls\n"
func Sanitize(msgs []string, opts *Options) (commands, queries []string, canonical string) {
	if opts == nil {
		opts = DefaultOptions()
	}
	eol := opts.EOL
	if eol == "" {
		eol = DefaultEOL
	}
	sep := opts.Sep
	if sep == "" {
		sep = DefaultSep
	}

	lines := strings.Split(strings.Join(msgs, eol), eol)

	var groups []string
	for _, line := range lines {
		var pending []string
		for _, cmd := range strings.Split(line, sep) {
			cmd = strings.TrimSpace(cmd)
			if cmd == "" {
				continue
			}

			commands = append(commands, cmd)
			isQuery := strings.Contains(cmd, "?")
			if isQuery {
				queries = append(queries, cmd)
			}

			if isQuery && opts.StrictQuery {
				if len(pending) > 0 {
					groups = append(groups, strings.Join(pending, sep))
					pending = nil
				}
				groups = append(groups, cmd)
			} else {
				pending = append(pending, cmd)
			}
		}
		if len(pending) > 0 {
			groups = append(groups, strings.Join(pending, sep))
		}
	}

	if len(groups) == 0 {
		return commands, queries, ""
	}
	return commands, queries, strings.Join(groups, eol) + eol
}
