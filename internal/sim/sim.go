// Package sim parses and replays cache operation scripts.
//
// A script has one operation per line:
//
//	put <key> <value>
//	get <key>
//	peek <key>
//	del <key>
//
// Blank lines and lines starting with # are ignored.
package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"go.expect.digital/recency/lru"
)

var ErrSyntax = errors.New("syntax error")

type Kind string

const (
	KindPut  Kind = "put"
	KindGet  Kind = "get"
	KindPeek Kind = "peek"
	KindDel  Kind = "del"
)

// Op is a single script operation.
type Op struct {
	Kind  Kind
	Key   string
	Value string
	Line  int
}

// Stats summarises a replay. Hits and Misses count get and peek lookups only;
// del results go to Deleted and Absent.
type Stats struct {
	Hits      int
	Misses    int
	Deleted   int
	Absent    int
	Evictions uint64
	Len       int
}

func (s Stats) String() string {
	return fmt.Sprintf("len=%d evictions=%d hits=%d misses=%d deleted=%d absent=%d",
		s.Len, s.Evictions, s.Hits, s.Misses, s.Deleted, s.Absent)
}

// Parse reads a script.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	sc := bufio.NewScanner(r)

	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		op, err := parseOp(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		op.Line = line
		ops = append(ops, op)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return ops, nil
}

func parseOp(fields []string) (Op, error) {
	kind := Kind(strings.ToLower(fields[0]))

	switch kind {
	case KindPut:
		if len(fields) != 3 {
			return Op{}, fmt.Errorf("%w: put wants key and value", ErrSyntax)
		}

		return Op{Kind: kind, Key: fields[1], Value: fields[2]}, nil
	case KindGet, KindPeek, KindDel:
		if len(fields) != 2 {
			return Op{}, fmt.Errorf("%w: %s wants a key", ErrSyntax, kind)
		}

		return Op{Kind: kind, Key: fields[1]}, nil
	default:
		return Op{}, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}
}

// Replay applies ops to c in order and writes one result line per get, peek
// and del to w.
func Replay(c *lru.Cache[string, string], ops []Op, w io.Writer, log zerolog.Logger) (Stats, error) {
	var stats Stats

	for _, op := range ops {
		log.Trace().Int("line", op.Line).Str("op", string(op.Kind)).Str("key", op.Key).Msg("replay")

		var (
			result string
			ok     bool
		)

		switch op.Kind {
		case KindPut:
			c.Put(op.Key, op.Value)

			continue
		case KindGet:
			result, ok = c.Get(op.Key)
		case KindPeek:
			result, ok = c.Peek(op.Key)
		case KindDel:
			ok = c.Remove(op.Key)
			result = "ok"
		}

		switch {
		case op.Kind == KindDel && ok:
			stats.Deleted++
		case op.Kind == KindDel:
			stats.Absent++
		case ok:
			stats.Hits++
		default:
			stats.Misses++
		}

		if !ok {
			result = "miss"
		}

		if _, err := fmt.Fprintf(w, "%s %s -> %s\n", op.Kind, op.Key, result); err != nil {
			return stats, fmt.Errorf("write result for line %d: %w", op.Line, err)
		}
	}

	stats.Evictions = c.EvictionCount()
	stats.Len = c.Len()

	return stats, nil
}
