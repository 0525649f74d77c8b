package export

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cattery/internal/domain"
)

// Format is a supported cat export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format. Blank means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", domain.ErrUnsupportedExportFormat
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// columns defines the header row shared by every format.
var columns = []string{
	"ID",
	"Name",
	"Breed",
	"Store",
	"Birthday",
	"Price",
	"Catcafe Status",
	"Visible",
	"Description",
	"Thumbnail",
	"Images",
	"Created At",
	"Updated At",
}

// Write renders cats to w in the given format.
func Write(w io.Writer, f Format, cats []domain.Cat) error {
	switch f {
	case FormatXLSX:
		return writeXLSX(w, cats)
	case FormatCSV:
		return writeCSV(w, cats)
	default:
		return domain.ErrUnsupportedExportFormat
	}
}

// catToRow converts a cat to one string per column.
func catToRow(cat *domain.Cat) []string {
	row := make([]string, len(columns))
	row[0] = cat.ID.String()
	row[1] = str(cat.Name)
	row[2] = cat.Breed
	row[3] = str(cat.StoreName)
	row[4] = str(cat.Birthday)
	if cat.Price != nil {
		row[5] = strconv.FormatFloat(*cat.Price, 'f', 2, 64)
	}
	row[6] = str(cat.CatcafeStatus)
	row[7] = formatBool(cat.Visible)
	row[8] = str(cat.Description)
	row[9] = str(cat.Thumbnail)
	row[10] = strings.Join(cat.Images, " ")
	row[11] = cat.CreatedAt.Format(time.RFC3339)
	row[12] = cat.UpdatedAt.Format(time.RFC3339)
	return row
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// unsafeFilename matches characters that are not safe in Content-Disposition.
var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Filename returns {prefix}_{YYYY-MM-DD}.{ext} with prefix sanitized.
func Filename(prefix string, f Format, now time.Time) string {
	s := strings.Trim(unsafeFilename.ReplaceAllString(prefix, "_"), "_")
	if s == "" {
		s = "cats"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return fmt.Sprintf("%s_%s.%s", s, now.Format("2006-01-02"), f)
}
