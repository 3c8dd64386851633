/* profile.go
 * Contains the validation rules for onboarding answers and the logic for building and parsing the
 * "Name - Year - Company" nickname format used on the server
 */

package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Separator is the literal string placed between the parts of a nickname
const Separator = " - "

var (
	ErrInvalidClassYear = errors.New("class year is not a number")
	ErrEmptyAnswer      = errors.New("answer is empty")
	ErrNoName           = errors.New("unable to determine name from nickname")
	ErrNoYear           = errors.New("unable to determine graduation year from nickname")
)

// Profile is the information a member supplies during onboarding, or recovers from their nickname
type Profile struct {
	Name      string
	ClassYear int
	Company   string
}

// DisplayName renders the profile as a server nickname
// Preconditions: Name and ClassYear are set
// Postconditions: Returns "Name - Year", or "Name - Year - Company" when Company is non-empty
func (p Profile) DisplayName() string {
	nick := fmt.Sprintf("%s%s%d", p.Name, Separator, p.ClassYear)
	if p.Company != "" {
		nick += Separator + p.Company
	}
	return nick
}

// ValidName trims the answer and reports whether anything is left
func ValidName(answer string) (string, bool) {
	name := strings.TrimSpace(answer)
	return name, name != ""
}

// ParseClassYear parses a class year answer. Any integer is accepted, including negative or far future years
// Preconditions: Receives the raw answer sent by the member
// Postconditions: Returns the year, or ErrInvalidClassYear if the trimmed answer is not an integer
func ParseClassYear(answer string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClassYear, answer)
	}
	return year, nil
}

// HasEmailDomain reports whether the trimmed email ends with domain, ignoring case
func HasEmailDomain(email string, domain string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	return strings.HasSuffix(email, strings.ToLower(domain))
}

// ParseCompanyAnswer interprets the answer to the optional company question asked of graduates
// Preconditions: Receives the raw answer sent by the member
// Postconditions: Returns skip=true for "no" (any case), the trimmed company otherwise, or ErrEmptyAnswer
// for a blank answer so the question can be asked again
func ParseCompanyAnswer(answer string) (company string, skip bool, err error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false, ErrEmptyAnswer
	}
	if strings.EqualFold(answer, "no") {
		return "", true, nil
	}
	return answer, false, nil
}

// IsGraduate reports whether a class year is strictly before the current calendar year
func IsGraduate(classYear int, now time.Time) bool {
	return classYear < now.Year()
}

// ParseDisplayName splits a nickname into at most three parts on Separator.
// A name that itself contains Separator shifts the remaining parts, so "Mary - Jane - 2023" fails with ErrNoYear.
// Preconditions: Receives the member's current nickname (or username when no nickname is set)
// Postconditions: Returns the parsed profile, ErrNoName if there is no year segment, or ErrNoYear if the
// year segment is not an integer
func ParseDisplayName(nick string) (Profile, error) {
	parts := strings.SplitN(nick, Separator, 3)
	if len(parts) < 2 {
		return Profile{}, ErrNoName
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrNoYear, parts[1])
	}

	p := Profile{
		Name:      strings.TrimSpace(parts[0]),
		ClassYear: year,
	}
	if len(parts) == 3 {
		p.Company = strings.TrimSpace(parts[2])
	}
	return p, nil
}
