package render

import (
	"strings"

	"github.com/team-tools/weekreport/pkg/models/domain"
)

const (
	bulletIndentSpaces = 2
	maxBulletLevel     = 2
)

// ParseBullets turns indentation-based list text into leveled bullet items.
// Two leading spaces make one level; depth clamps at three levels. Blank
// lines are skipped and a leading "- " or "* " marker is stripped. Lines
// without a marker still become items at their indentation level, so
// malformed input degrades instead of failing.
func ParseBullets(text string) []domain.BulletItem {
	if text == "" {
		return nil
	}

	var items []domain.BulletItem
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		leading := len(line) - len(strings.TrimLeft(line, " "))
		level := leading / bulletIndentSpaces
		if level > maxBulletLevel {
			level = maxBulletLevel
		}

		content := stripListMarker(strings.TrimSpace(line))
		if content == "" {
			continue
		}

		items = append(items, domain.BulletItem{Text: content, Level: level})
	}
	return items
}

// stripListMarker removes a "- " or "* " prefix. The marker must be followed
// by at least one space; anything else is treated as ordinary text.
func stripListMarker(s string) string {
	if len(s) > 1 && (s[0] == '-' || s[0] == '*') && s[1] == ' ' {
		return strings.TrimLeft(s[1:], " ")
	}
	return s
}
