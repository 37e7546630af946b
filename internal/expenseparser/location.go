package expenseparser

import "strings"

// locationCues are checked in declared order; the first cue found anywhere
// in the text wins, regardless of where the other cues occur. This
// order-over-position precedence is deliberate: "at" is the strongest
// location signal even when another cue appears earlier in the string.
var locationCues = []string{"at ", "from ", "near ", "in "}

// maxLocationWords caps the extracted location phrase.
const maxLocationWords = 3

// ExtractLocation derives an optional location phrase from the raw text by
// scanning for preposition cues and taking the 1-3 words that follow. The
// words are taken from the original-case string so proper nouns keep their
// casing. An empty string means no location was found.
func ExtractLocation(rawText string) string {
	lowered := strings.ToLower(rawText)

	for _, cue := range locationCues {
		idx := strings.Index(lowered, cue)
		if idx < 0 {
			continue
		}

		words := strings.Fields(rawText[idx+len(cue):])
		if len(words) == 0 {
			return ""
		}
		if len(words) > maxLocationWords {
			words = words[:maxLocationWords]
		}
		return strings.Join(words, " ")
	}
	return ""
}
