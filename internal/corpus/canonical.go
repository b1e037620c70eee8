package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// canonicalSeparator joins the sections of the canonical text. Changing it
// invalidates every stored content hash.
const canonicalSeparator = "\n"

// Canonicalize returns the normalized text blob that gets embedded for an
// entry. Field order is fixed: title, subtitle, description, steps, common
// issues, keywords. The output is stable across runs so content hashes stay
// comparable; it performs no I/O.
func Canonicalize(e *Entry) string {
	parts := make([]string, 0, 4+len(e.Steps)+len(e.CommonIssues))
	parts = append(parts, e.Title, e.Subtitle, e.Description)
	for _, s := range e.Steps {
		parts = append(parts, s.Title+": "+s.Detail)
	}
	for _, issue := range e.CommonIssues {
		parts = append(parts, issue.Problem+": "+issue.Solution)
	}
	parts = append(parts, strings.Join(e.Keywords, ", "))
	return strings.Join(parts, canonicalSeparator)
}

// ContentHash returns the hex SHA-256 of the entry's canonical text. A stored
// embedding whose hash differs from the current ContentHash is stale.
func ContentHash(e *Entry) string {
	sum := sha256.Sum256([]byte(Canonicalize(e)))
	return hex.EncodeToString(sum[:])
}
