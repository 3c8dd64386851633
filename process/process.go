/* process.go
 * Contains the grammar for "!process" submissions posted in the interview process channels, the list of valid
 * stages and the text of the notices sent back to members
 */

package process

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Prefix is the command word every submission starts with
const Prefix = "!process"

// Stages is the canonical list of interview stages a submission can report, in the order they are shown to members
var Stages = []string{"apply", "phone", "OA", "1st round", "2nd round", "final", "offer", "rejected", "ghost"}

var pattern = regexp.MustCompile(`(?i)^!process\s+(.+?)\s+(` + strings.Join(lo.Map(Stages, func(s string, _ int) string {
	return regexp.QuoteMeta(s)
}), "|") + `)(?:\s+\((.+)\))?$`)

// Submission is a message that follows the "!process <company> <stage> [(<note>)]" grammar
type Submission struct {
	Company string
	Stage   string
	Note    string
}

// IsOffer reports whether the submission announces an offer
func (s Submission) IsOffer() bool {
	return strings.EqualFold(s.Stage, "offer")
}

// Parse matches a message against the submission grammar, ignoring case
// Preconditions: Receives the full content of a message
// Postconditions: Returns the parsed submission and true if the message matches, else false
func Parse(content string) (Submission, bool) {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return Submission{}, false
	}
	return Submission{
		Company: match[1],
		Stage:   match[2],
		Note:    match[3],
	}, true
}

// IsProcessChannel reports whether a channel name is one of the channels where submissions are enforced
func IsProcessChannel(name string, channels []string) bool {
	return lo.Contains(channels, name)
}

// SuggestStage looks for the stage a member most likely meant when their submission was rejected
// Preconditions: Receives the content of a message that did not match the grammar
// Postconditions: Returns the closest stage and true when the last word of a "!process" message fuzzy matches
// exactly one best stage, else false
func SuggestStage(content string) (string, bool) {
	fields := strings.Fields(content)
	if len(fields) < 2 || !strings.EqualFold(fields[0], Prefix) {
		return "", false
	}

	word := fields[len(fields)-1]
	if lo.ContainsBy(Stages, func(s string) bool { return strings.EqualFold(s, word) }) {
		return "", false
	}

	ranks := fuzzy.RankFindNormalizedFold(word, Stages)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Stable(ranks)
	// Two stages equally close is not a suggestion worth making
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return "", false
	}
	return ranks[0].Target, true
}

// FormatNotice builds the correction notice sent when a submission does not follow the grammar
func FormatNotice(userID string, suggestion string) string {
	notice := fmt.Sprintf("<@%s>, please follow the format: \"%s {company name} {%s}\"", userID, Prefix, strings.Join(Stages, "|"))
	if suggestion != "" {
		notice += fmt.Sprintf(" Did you mean \"%s\"?", suggestion)
	}
	return notice
}
