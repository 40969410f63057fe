// Package extract pulls structured data points out of free text. Extraction
// is always local; it never touches an AI backend.
package extract

import "regexp"

// Kind selects what to extract.
type Kind string

const (
	KindEmails  Kind = "emails"
	KindURLs    Kind = "urls"
	KindPhones  Kind = "phones"
	KindNumbers Kind = "numbers"
)

var patterns = map[Kind]*regexp.Regexp{
	KindEmails:  regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	KindURLs:    regexp.MustCompile(`https?://[^\s<>"')]+`),
	KindPhones:  regexp.MustCompile(`\+?\d{1,3}[-. ]?\(?\d{3}\)?[-. ]?[0-9A-Z]{2,8}(?:[-. ][0-9A-Z]{2,8})*`),
	KindNumbers: regexp.MustCompile(`\d+(?:\.\d+)?%?`),
}

// Extract returns every match of kind in text, in document order,
// duplicates removed. Unknown kinds yield an empty slice.
func Extract(text string, kind Kind) []string {
	re, ok := patterns[kind]
	if !ok {
		return []string{}
	}

	matches := re.FindAllString(text, -1)
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// StructuredData bundles all extraction kinds for one document.
type StructuredData struct {
	Emails  []string `json:"emails"`
	URLs    []string `json:"urls"`
	Phones  []string `json:"phones"`
	Numbers []string `json:"numbers"`
}

// All runs every extractor over text.
func All(text string) StructuredData {
	return StructuredData{
		Emails:  Extract(text, KindEmails),
		URLs:    Extract(text, KindURLs),
		Phones:  Extract(text, KindPhones),
		Numbers: Extract(text, KindNumbers),
	}
}

// Count returns the total number of data points extracted.
func (d StructuredData) Count() int {
	return len(d.Emails) + len(d.URLs) + len(d.Phones) + len(d.Numbers)
}
