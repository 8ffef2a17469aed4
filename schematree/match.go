package schematree

import (
	"regexp"
	"strings"
)

// Matcher decides whether a schema item name matches a search query,
// either by case-insensitive substring containment or by case-insensitive
// regular expression.
type Matcher struct {
	query string
	regex bool
}

// NewMatcher builds a matcher for query. The query is lowercased up
// front; in regex mode the pattern is validated here so a bad pattern
// fails before any connection is opened.
func NewMatcher(query string, regex bool) (*Matcher, error) {
	q := strings.ToLower(query)
	if regex {
		if _, err := regexp.Compile("(?i)" + q); err != nil {
			return nil, err
		}
	}
	return &Matcher{query: q, regex: regex}, nil
}

// Matches reports whether name matches the query. The regex is compiled
// per call; the pattern was validated in NewMatcher.
func (m *Matcher) Matches(name string) bool {
	if m.regex {
		re, err := regexp.Compile("(?i)" + m.query)
		if err != nil {
			return false
		}
		return re.MatchString(name)
	}
	return strings.Contains(strings.ToLower(name), m.query)
}
