package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// selectionRe matches a message that is nothing but a choice:
	// "2", "option 2", "2nd".
	selectionRe = regexp.MustCompile(`^(?:option\s+)?(\d)(?:st|nd|rd|th)?$`)

	// bareDigitRe picks a digit out of a short free-form answer such as
	// "the first one, number 1". Zero is excluded; it can never name a
	// candidate.
	bareDigitRe = regexp.MustCompile(`\b([1-9])\b`)
)

// bareDigitLimit keeps the loose digit scan away from real commands.
// "delete my 3pm meeting" carries a digit but is far longer than any
// plausible selection reply.
const bareDigitLimit = 20

// parseSelection reports whether message answers a disambiguation
// prompt, and with which 1-based choice.
func parseSelection(message string) (int, bool) {
	if m := selectionRe.FindStringSubmatch(strings.ToLower(message)); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}
	if len(message) < bareDigitLimit {
		if m := bareDigitRe.FindStringSubmatch(message); m != nil {
			n, _ := strconv.Atoi(m[1])
			return n, true
		}
	}
	return 0, false
}
