package transcript

import (
	"regexp"
	"strings"
)

var (
	reSrtIndex = regexp.MustCompile(`^\d+$`)
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[,.]\d{3}\s*-->`)
	reSrtTag   = regexp.MustCompile(`</?[a-zA-Z][^>]*>|\{\\[^}]*\}`)
)

// ParseSRT drops sequence numbers, timestamps and styling tags from SubRip
// content and joins the dialogue into one paragraph, so sentences broken
// across cues are rejoined. Repeated consecutive lines are dropped.
func ParseSRT(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var parts []string
	last := ""
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSrtIndex.MatchString(trimmed) || reSrtTime.MatchString(trimmed) {
			continue
		}
		trimmed = strings.TrimSpace(reSrtTag.ReplaceAllString(trimmed, ""))
		if trimmed == "" || trimmed == last {
			continue
		}
		last = trimmed
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}
