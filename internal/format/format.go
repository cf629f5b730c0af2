package format

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the human readable date used in listings and exports.
const DateLayout = "Jan 2, 2006"

var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators, e.g. 1234567 -> "1,234,567".
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Date formats t as "Mar 5, 2024". The zero time formats as "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// WriteJSON writes indented JSON to w. When fenced is set the output is
// wrapped in a markdown code fence for pasting into chat or issues.
func WriteJSON(w io.Writer, v any, fenced bool) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	if fenced {
		fmt.Fprintln(w, "```json")
	}
	fmt.Fprintln(w, string(output))
	if fenced {
		fmt.Fprintln(w, "```")
	}
	return nil
}
