package report

import "strings"

// chartLabel shortens a target URL for use as a bar label
func chartLabel(url string) string {
	s := strings.TrimPrefix(url, "https://")
	s = strings.TrimPrefix(s, "http://")
	return strings.TrimPrefix(s, "www.")
}
