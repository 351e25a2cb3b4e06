package usererrors

import "strings"

// Line breaks inside caller input would split the diagnostic into several lines.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Compose builds the diagnostic message "[prefix] template [suffix]". Empty segments are dropped
// so the result never carries leading, trailing or doubled separators.
func Compose(kind Kind, prefix string, suffix string) string {
	return joinSegments(prefix, kind.Template(), suffix)
}

// FormatLine renders the single line written to the diagnostic channel.
func FormatLine(site string, kind Kind, prefix string, suffix string) string {
	message := Compose(kind, prefix, suffix)
	site = lineBreaks.Replace(site)
	if site == "" {
		return message
	}
	return site + ": " + message
}

func joinSegments(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(lineBreaks.Replace(segment))
		if segment == "" {
			continue
		}
		parts = append(parts, segment)
	}
	return strings.Join(parts, " ")
}
