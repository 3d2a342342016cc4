package deck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/team-tools/weekreport/pkg/models/domain"
)

// Encoder serializes a finished deck model for download. The JSON encoder is
// the default; a binary presentation encoder plugs into the same seam.
type Encoder interface {
	ContentType() string
	FileExt() string
	Encode(w io.Writer, d *domain.Deck) error
}

type jsonEncoder struct{}

func NewJSONEncoder() Encoder {
	return jsonEncoder{}
}

func (jsonEncoder) ContentType() string {
	return "application/json"
}

func (jsonEncoder) FileExt() string {
	return "json"
}

func (jsonEncoder) Encode(w io.Writer, d *domain.Deck) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	return nil
}

// Filename derives the caller-visible download name from team, year and week
// number. Spaces in the team name become underscores.
func Filename(team string, year, week int, ext string) string {
	team = strings.ReplaceAll(strings.TrimSpace(team), " ", "_")
	return fmt.Sprintf("%s_weekly_report_%d-W%02d.%s", team, year, week, ext)
}
