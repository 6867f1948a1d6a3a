package dialogue

import "strings"

// Answer synonym sets for confirmation prompts. Membership is checked
// on the trimmed, lowercased utterance.
var (
	affirmatives = map[string]struct{}{
		"yes": {}, "y": {}, "ok": {}, "okay": {}, "sure": {},
		"choose it": {}, "chooseit": {}, "yeah": {}, "yep": {}, "accept": {},
	}
	negatives = map[string]struct{}{
		"no": {}, "n": {}, "nah": {}, "nope": {}, "cancel": {},
	}
)

func isAffirmative(input string) bool {
	_, ok := affirmatives[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

func isNegative(input string) bool {
	_, ok := negatives[strings.ToLower(strings.TrimSpace(input))]
	return ok
}
