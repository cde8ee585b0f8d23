// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret recovers structured car-listing data from agent replies.
package interpret

import (
	"regexp"
	"strings"

	"github.com/jeranaias/carscout-tui/internal/sites"
)

// markdownLinkPattern matches "[name](url)" links globally within a section.
var markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)

// extractSources finds all markdown links in a source section and resolves
// each through the registry. A resolved link keeps the LINK's URL but takes
// the registry's display name and icon; an unresolved link keeps its literal
// text as the name and carries no icon. Order of appearance is preserved and
// duplicates are kept.
func extractSources(section string, registry *sites.Registry) []Source {
	var out []Source
	for _, m := range markdownLinkPattern.FindAllStringSubmatch(section, -1) {
		name, url := strings.TrimSpace(m[1]), m[2]
		if entry := registry.Resolve(url); entry != nil {
			out = append(out, Source{Name: entry.Name, URL: url, Icon: entry.Icon})
		} else {
			out = append(out, Source{Name: name, URL: url})
		}
	}
	return out
}

// fallbackSource synthesizes a single source from a recovered listing URL
// when a reply carried no explicit source links. The synthesized source
// points at the site's canonical base URL rather than the listing itself;
// a URL that resolves to no known site produces nothing.
func fallbackSource(listingURL string, registry *sites.Registry) []Source {
	if listingURL == "" {
		return nil
	}
	entry := registry.Resolve(listingURL)
	if entry == nil {
		return nil
	}
	return []Source{{Name: entry.Name, URL: entry.BaseURL, Icon: entry.Icon}}
}
