package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/shopinsight"
)

// emailPattern matches the loose local@domain.tld shape.
var emailPattern = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)

// phonePattern is deliberately over-inclusive: optional country code, a
// 2-4 digit area code, then two 3-5 digit groups separated by spaces,
// dashes, dots or parentheses.
var phonePattern = regexp.MustCompile(`(?:(?:\+?\d{1,3})?[\s\-.(]*)?\d{2,4}[\s\-.)]*\d{3,5}[\s\-.)]*\d{3,5}`)

// minPhoneLength is the shortest trimmed phone candidate kept.
const minPhoneLength = 7

// ContactDetails scans all visible text for emails and phone candidates.
// Both lists are deduplicated and keep first-occurrence order.
func (s *Scraper) ContactDetails(html string) shopinsight.ContactDetail {
	detail := shopinsight.ContactDetail{
		Emails: []string{},
		Phones: []string{},
	}

	doc := parse(html)
	if doc == nil {
		return detail
	}
	text := visibleText(doc.Nodes, " ")

	detail.Emails = uniqueMatches(emailPattern, text, 0)
	detail.Phones = uniqueMatches(phonePattern, text, minPhoneLength)
	return detail
}

// uniqueMatches returns trimmed, deduplicated matches at least minLen long.
func uniqueMatches(re *regexp.Regexp, text string, minLen int) []string {
	seen := make(map[string]bool)
	matches := []string{}
	for _, m := range re.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if len(m) < minLen || m == "" || seen[m] {
			continue
		}
		seen[m] = true
		matches = append(matches, m)
	}
	return matches
}
