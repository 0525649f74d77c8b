package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cattery/internal/domain"
)

func strPtr(s string) *string { return &s }

func sampleCats() []domain.Cat {
	price := 3000.0
	created := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	return []domain.Cat{
		{
			ID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Breed:         "短毛金点弟弟",
			StoreName:     strPtr("山东店"),
			Birthday:      strPtr("2025-06-08"),
			Price:         &price,
			Images:        domain.StringList{"a.jpg", "b.jpg"},
			CatcafeStatus: strPtr("resting"),
			Visible:       true,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{
			ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:      strPtr("团子"),
			Breed:     "豹猫妹妹",
			Images:    domain.StringList{},
			Visible:   false,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleCats()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "短毛金点弟弟", rows[1][2])
	assert.Equal(t, "山东店", rows[1][3])
	assert.Equal(t, "3000.00", rows[1][5])
	assert.Equal(t, "Yes", rows[1][7])
	assert.Equal(t, "a.jpg b.jpg", rows[1][10])
	assert.Equal(t, "2025-06-10T08:00:00Z", rows[1][11])

	assert.Equal(t, "团子", rows[2][1])
	assert.Empty(t, rows[2][5])
	assert.Equal(t, "No", rows[2][7])
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, sampleCats()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Breed", rows[0][2])
	assert.Equal(t, "短毛金点弟弟", rows[1][2])
	assert.Equal(t, "3000", rows[1][5])
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, nil))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "cats_2025-06-10.csv", Filename("cats", FormatCSV, now))
	assert.Equal(t, "my_cats_2025-06-10.xlsx", Filename("my cats!", FormatXLSX, now))
	assert.Equal(t, "cats_2025-06-10.csv", Filename("猫咪", FormatCSV, now))
}
