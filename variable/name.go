/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package variable

import "strings"

// Separator delimits the segments of a hierarchical variable name.
const Separator = "/"

// Info is a variable name split into its group and short name.
type Info struct {
	// Group is every segment but the last, joined by single spaces.
	Group string

	// Name is the last segment.
	Name string
}

// ParseName splits a hierarchical name into group and short name.
// A name without a separator has an empty group.
func ParseName(full string) Info {
	parts := strings.Split(full, Separator)
	return Info{
		Group: strings.Join(parts[:len(parts)-1], " "),
		Name:  parts[len(parts)-1],
	}
}
