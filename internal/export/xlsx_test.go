package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"ropboard/internal/domain"
)

func TestWriteShortlistXLSX(t *testing.T) {
	courses := []domain.Course{
		{
			ID:              "101",
			Title:           "Wetland Ecology Field Study",
			Terms:           []string{"Fall", "Winter"},
			Department:      "Biology",
			OpeningsPerTerm: 2,
			FacultySupervisors: []domain.Supervisor{
				{Name: "Dr. A. Heron"},
				{Name: "Dr. B. Crane"},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "shortlist.xlsx")
	if err := WriteShortlistXLSX(path, courses); err != nil {
		t.Fatalf("WriteShortlistXLSX error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(shortlistSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "Course ID" || rows[0][1] != "Title" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "101" || rows[1][4] != "Fall, Winter" {
		t.Errorf("data row = %v", rows[1])
	}
	if rows[1][9] != "Dr. A. Heron, Dr. B. Crane" {
		t.Errorf("supervisor cell = %q", rows[1][9])
	}
}
