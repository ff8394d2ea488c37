// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import "net/url"

// EncodeComponent percent-encodes s for use as a single path segment of a
// metadata service URL. ASCII letters, digits and "-_.~" pass through, a
// space becomes "+", and every other byte becomes %XX in uppercase hex.
// This is exactly the query-component escaping of net/url.
func EncodeComponent(s string) string {
	return url.QueryEscape(s)
}
