/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for variable formatters.
package formatter

import (
	"context"
	"fmt"
	"strings"

	"bennypowers.dev/figvars/collector"
	"bennypowers.dev/figvars/variable"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts collected variables to the target format.
	Format(ctx context.Context, entries []collector.Entry) ([]byte, error)
}

// CommentStyle describes how a multi-line header comment is written.
type CommentStyle struct {
	Open       string
	LinePrefix string
	Close      string
}

// CStyleComments writes headers as /* ... */ blocks.
var CStyleComments = CommentStyle{Open: "/*", LinePrefix: " * ", Close: " */"}

// FormatHeader renders header text as a comment block followed by a blank line.
// An empty header renders as an empty string.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}

	lines := strings.Split(header, "\n")
	if len(lines) == 1 {
		return style.Open + " " + lines[0] + style.Close + "\n\n"
	}

	var sb strings.Builder
	sb.WriteString(style.Open + "\n")
	for _, line := range lines {
		sb.WriteString(strings.TrimRight(style.LinePrefix+line, " ") + "\n")
	}
	sb.WriteString(strings.TrimLeft(style.Close, " ") + "\n\n")
	return sb.String()
}

// ValueString renders a value as literal text: numbers in shortest form,
// strings verbatim, and anything else through its String method or %v.
func ValueString(v any) string {
	if f, ok := variable.Number(v); ok {
		return variable.FormatNumber(f)
	}
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Indent prefixes every non-empty line of s with prefix.
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
