package deck

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/team-tools/weekreport/pkg/models/domain"
)

func TestJSONEncoder(t *testing.T) {
	enc := NewJSONEncoder()

	assert.Equal(t, "application/json", enc.ContentType())
	assert.Equal(t, "json", enc.FileExt())

	t.Run("round trips the deck model", func(t *testing.T) {
		d := &domain.Deck{
			Title:   "Operations Improvement",
			Company: "Platform",
			Subject: "Weekly Report 2026 W32",
			Slides: []domain.Slide{{
				Header: domain.HeaderBlock{Title: "Operations Improvement"},
				Tables: []domain.TableBlock{{
					Columns: 2,
					Rows: []domain.TableRow{{
						{Style: domain.CellHeader, Text: "a", RowSpan: 1, ColSpan: 1},
						{Style: domain.CellHeader, Text: "b", RowSpan: 1, ColSpan: 1},
					}},
				}},
			}},
		}

		var buf bytes.Buffer
		assert.NoError(t, enc.Encode(&buf, d))

		var decoded domain.Deck
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, *d, decoded)
	})
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Platform_weekly_report_2026-W32.json", Filename("Platform", 2026, 32, "json"))

	t.Run("spaces become underscores", func(t *testing.T) {
		assert.Equal(t, "Core_Systems_weekly_report_2026-W05.pptx", Filename(" Core Systems ", 2026, 5, "pptx"))
	})
}
