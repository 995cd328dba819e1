// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namer turns arbitrary strings into filesystem-safe names.
package namer

import (
	"regexp"
	"strings"
)

// illegalChars matches characters that are invalid in file and folder
// names on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// separatorRuns matches runs of the separator character.
var separatorRuns = regexp.MustCompile(`_+`)

// Sanitize converts name into a safe folder or file name: illegal
// characters are dropped, spaces become underscores, underscore runs
// collapse to one, and leading/trailing underscores are trimmed.
//
// Sanitize is idempotent and total. An input consisting entirely of
// illegal characters sanitizes to the empty string; callers building
// folder names must tolerate that.
func Sanitize(name string) string {
	s := illegalChars.ReplaceAllString(name, "")
	s = strings.ReplaceAll(s, " ", "_")
	s = separatorRuns.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
