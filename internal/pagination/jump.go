package pagination

import (
	"strconv"
	"strings"
)

// JumpInput is the free-form "go to page" field.
type JumpInput struct {
	total int
	text  string
}

// NewJumpInput creates an empty input bounded by total pages.
func NewJumpInput(total int) *JumpInput {
	return &JumpInput{total: total}
}

// Set replaces the typed text.
func (j *JumpInput) Set(text string) {
	j.text = text
}

// SetTotal updates the upper bound after the result set changes.
func (j *JumpInput) SetTotal(total int) {
	j.total = total
}

// Text returns the typed text.
func (j *JumpInput) Text() string {
	return j.text
}

// Enabled reports whether the text is an integer page in [1, total].
func (j *JumpInput) Enabled() bool {
	_, ok := j.parse()
	return ok
}

// Submit returns the requested page and clears the input. Invalid input is
// kept and reported with ok=false.
func (j *JumpInput) Submit() (page int, ok bool) {
	page, ok = j.parse()
	if !ok {
		return 0, false
	}
	j.text = ""
	return page, true
}

func (j *JumpInput) parse() (int, bool) {
	page, err := strconv.Atoi(strings.TrimSpace(j.text))
	if err != nil || page < 1 || page > j.total {
		return 0, false
	}
	return page, true
}
