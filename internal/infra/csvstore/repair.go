package csvstore

import (
	"fmt"
	"os"
	"strings"
)

// repair re-parses the table file leniently and rewrites it with only the
// rows that survive validation. It tolerates partial writes from prior
// crashes, stray columns from manual spreadsheet edits, and format drift:
// maximally permissive on read, maximally strict on what gets persisted
// back. Running it twice in a row drops nothing the second time.
//
// Parsing is deliberately line- and comma-based rather than CSV-aware, so
// malformed rows cannot abort the pass. Returns the number of rows dropped.
func (f *recordFile) repair() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("repair %s: %w", f.table.FileName, err)
	}

	cols := f.table.Columns()
	var rows [][]string
	dropped := 0
	sawHeader := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// The first non-empty line is the header; it is replaced with the
		// canonical header unconditionally on rewrite.
		if !sawHeader {
			sawHeader = true
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < cols {
			dropped++
			f.logOp("repair", true, fmt.Sprintf("dropped short row (%d/%d fields): %s", len(fields), cols, line))
			continue
		}
		fields = fields[:cols]

		if !f.table.validRow(fields) {
			dropped++
			// Quoted fields with embedded commas are mangled by the naive
			// split; flag them so the drop reads as data loss, not healing.
			if strings.Contains(line, `"`) {
				f.logOp("repair", true, "dropped row with quoted fields (comma split mangles quoting): "+line)
			} else {
				f.logOp("repair", true, "dropped invalid row: "+strings.Join(fields, ","))
			}
			continue
		}
		rows = append(rows, fields)
	}

	if err := f.writeAll(rows); err != nil {
		return dropped, err
	}
	if dropped > 0 {
		f.logOp("repair", true, fmt.Sprintf("%d rows dropped, %d kept", dropped, len(rows)))
	}
	return dropped, nil
}
