package intent

import (
	"regexp"
	"strings"
)

var (
	orderLeadIn     = regexp.MustCompile(`(?i)i want to order`)
	leadingArticle  = regexp.MustCompile(`(?i)^(a|an|the)\s+`)
	inquiryLeadIn   = regexp.MustCompile(`(?i)(do you have|i want)`)
	inquiryFiller   = regexp.MustCompile(`(?i)\b(any|all|the)\b`)
	searchVerbWords = regexp.MustCompile(`(?i)\b(find|search|available)\b`)
)

// ExtractProductName strips the order lead-in and leading articles from
// an utterance, leaving the product phrase ("I want to order a hoodie"
// -> "hoodie").
func ExtractProductName(utterance string) string {
	cleaned := strings.TrimSpace(orderLeadIn.ReplaceAllString(utterance, ""))
	cleaned = strings.TrimSpace(leadingArticle.ReplaceAllString(cleaned, ""))
	return cleaned
}

// ExtractInquiryQuery strips inquiry lead-ins and filler words
// ("do you have any hoodies" -> "hoodies").
func ExtractInquiryQuery(utterance string) string {
	cleaned := strings.TrimSpace(inquiryLeadIn.ReplaceAllString(utterance, ""))
	cleaned = strings.TrimSpace(inquiryFiller.ReplaceAllString(cleaned, ""))
	return strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))
}

// ExtractSearchQuery strips search verbs ("find hoodies" -> "hoodies").
func ExtractSearchQuery(utterance string) string {
	cleaned := strings.TrimSpace(searchVerbWords.ReplaceAllString(utterance, ""))
	return strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))
}
