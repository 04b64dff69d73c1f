// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives file-name-safe keys from template names. Keys
// keep Unicode letters so names like "Εβδομαδιαίες Προσφορές" stay
// recognizable on disk.
package slug

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches anything that isn't a letter, digit, whitespace,
	// or hyphen, in any script.
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
	// separators collapses whitespace and hyphen runs into one hyphen.
	separators = regexp.MustCompile(`[\s-]+`)
)

// Generate derives a key from a template name.
// Example: "Weekly Special! 2026" → "weekly-special-2026"
func Generate(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = disallowed.ReplaceAllString(key, "")
	key = separators.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}
