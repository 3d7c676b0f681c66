// Package markdown pulls structured fragments out of memory-bank
// documents. Everything here is pure string scanning: no function does
// I/O, and malformed input degrades to empty results rather than errors.
package markdown

import (
	"regexp"
	"strings"
)

var (
	// CheckedBox matches a completed checkbox list item.
	CheckedBox = regexp.MustCompile(`(?i)- \[x\]`)
	// AnyCheckbox matches a checkbox list item in either state.
	AnyCheckbox = regexp.MustCompile(`(?i)- \[[x ]\]`)

	numberedItem = regexp.MustCompile(`^\d+\.`)
)

// ExtractSection returns the body of the "## name" section: the lines
// after the heading up to the next second-level heading or end of input,
// trimmed of surrounding whitespace. The heading must match exactly;
// "## Current Status Details" is not "## Current Status". Missing
// sections yield "".
func ExtractSection(text, name string) string {
	lines := strings.Split(text, "\n")
	heading := "## " + name

	start := -1
	for i, line := range lines {
		if strings.TrimRight(line, "\r") == heading {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimRight(lines[i], "\r"), "## ") {
			end = i
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// BulletItems returns the "- " list items in text with the marker
// stripped. Items whose content starts with "_" are placeholders
// ("- _None yet_") and are skipped.
func BulletItems(text string) []string {
	var items []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "- _") {
			continue
		}
		items = append(items, strings.TrimSpace(line[2:]))
	}
	return items
}

// NumberedSteps returns the "1." style list items in text with the
// ordinal stripped. The written numbering is ignored; order of
// appearance wins.
func NumberedSteps(text string) []string {
	var steps []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		loc := numberedItem.FindStringIndex(line)
		if loc == nil {
			continue
		}
		steps = append(steps, strings.TrimSpace(line[loc[1]:]))
	}
	return steps
}

// CountPattern counts non-overlapping matches of re in text.
func CountPattern(text string, re *regexp.Regexp) int {
	return len(re.FindAllStringIndex(text, -1))
}

// CountTableRows counts the data rows of a markdown table: every line
// whose trimmed form starts with "|", minus two for the header and
// separator rows, floored at zero.
func CountTableRows(text string) int {
	rows := 0
	for _, raw := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(raw), "|") {
			rows++
		}
	}
	if rows <= 2 {
		return 0
	}
	return rows - 2
}
