// Package naming canonicalizes texture file stems into the identifiers used
// by the Bedrock resource pack: lowercase, underscore-separated, with the
// "ic2_" namespace tag.
package naming

import (
	"path"
	"regexp"
	"strings"
)

// Namespace is the identifier prefix shared by all pack textures.
const Namespace = "ic2_"

var (
	nonAlnumRe  = regexp.MustCompile(`[^A-Za-z0-9]+`)
	camelEdgeRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	dupScoreRe  = regexp.MustCompile(`_{2,}`)
)

// Normalize turns an arbitrary file stem (mixed case, camel case, stray
// separators) into its canonical form.
//
// cleaned is the bare token: runs of non-alphanumerics become single
// underscores, camel-case boundaries are split, everything is lowercased,
// and one leading "item" or "block" marker is dropped. normalizedID is
// cleaned with the Namespace tag prepended, unless cleaned already carries
// it. An empty stem yields two empty strings.
func Normalize(stem string) (normalizedID, cleaned string) {
	cleaned = nonAlnumRe.ReplaceAllString(stem, "_")
	cleaned = camelEdgeRe.ReplaceAllString(cleaned, "${1}_${2}")
	cleaned = strings.ToLower(cleaned)
	cleaned = dupScoreRe.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")
	for _, prefix := range []string{"item_", "block_"} {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimPrefix(cleaned, prefix)
			break
		}
	}
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return "", ""
	}
	if strings.HasPrefix(cleaned, Namespace) {
		return cleaned, cleaned
	}
	return Namespace + cleaned, cleaned
}

// RouteKey rewrites a mirrored key to its canonical resource-pack location,
// deriving the stem from the key's base name. It is the renaming mode of the
// bulk pass: loose/CamelCase artist exports land at blocks/<ic2_id>.png or
// items/<ic2_id>.png instead of their original relative paths.
func RouteKey(key string) string {
	base := path.Base(key)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return DestinationFor(stem, key)
}

// DestinationFor routes a discovered texture to its resource-pack location:
// blocks/ when the stem mentions a block or the source path runs through a
// "blocks" directory, items/ otherwise.
func DestinationFor(stem, sourcePath string) string {
	normalized, _ := Normalize(stem)
	root := "items"
	if strings.Contains(strings.ToLower(stem), "block") || inBlocksDir(sourcePath) {
		root = "blocks"
	}
	return root + "/" + normalized + ".png"
}

func inBlocksDir(sourcePath string) bool {
	for _, part := range strings.Split(sourcePath, "/") {
		if part == "blocks" {
			return true
		}
	}
	return false
}
