// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	timeFormat     = "2006-01-02T15:04:05-0700"
	termTimeFormat = "01-02|15:04:05.000"
	termMsgJust    = 40
)

func levelColor(l slog.Level) int {
	switch {
	case l >= LevelCrit:
		return 35
	case l >= slog.LevelError:
		return 31
	case l >= slog.LevelWarn:
		return 33
	case l >= slog.LevelInfo:
		return 32
	case l >= slog.LevelDebug:
		return 36
	default:
		return 34
	}
}

func (h *TerminalHandler) format(buf []byte, r slog.Record) []byte {
	lvl := LevelAlignedString(r.Level)
	if h.useColor {
		buf = fmt.Appendf(buf, "\x1b[%dm%s\x1b[0m", levelColor(r.Level), lvl)
	} else {
		buf = append(buf, lvl...)
	}
	buf = append(buf, " ["...)
	buf = r.Time.AppendFormat(buf, termTimeFormat)
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	// align the context of short messages
	if n := utf8.RuneCountInString(r.Message); n < termMsgJust && (len(h.attrs) > 0 || r.NumAttrs() > 0) {
		buf = append(buf, strings.Repeat(" ", termMsgJust-n)...)
	}

	for _, attr := range h.attrs {
		buf = appendAttr(buf, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		buf = appendAttr(buf, attr)
		return true
	})
	return append(buf, '\n')
}

func appendAttr(buf []byte, attr slog.Attr) []byte {
	attr = builtinReplace(nil, attr, true)
	buf = append(buf, ' ')
	buf = append(buf, attr.Key...)
	buf = append(buf, '=')
	return appendEscaped(buf, attr.Value.String())
}

func appendEscaped(buf []byte, s string) []byte {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}
