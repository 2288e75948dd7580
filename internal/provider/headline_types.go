package provider

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"
)

// HeadlineItem is one raw news record from any source, in the shape
// the feed service stores and the annotation pipeline consumes.
// RelatedSymbols is the provider's comma-separated symbol hint and may
// be empty.
type HeadlineItem struct {
	ExternalID     string
	Title          string
	RelatedSymbols string
	Category       string
	Source         string
	URL            string
	PublishedAt    time.Time
}

// hashID derives a stable external id for sources that do not supply one.
func hashID(parts ...string) string {
	h := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h[:])
}

func sanitizeText(in string, maxLen int) string {
	in = strings.TrimSpace(in)
	if in == "" {
		return ""
	}
	in = strings.ReplaceAll(in, "\n", " ")
	in = strings.ReplaceAll(in, "\r", " ")
	in = strings.Join(strings.Fields(in), " ")
	if maxLen > 0 && len(in) > maxLen {
		in = in[:maxLen]
	}
	return in
}
