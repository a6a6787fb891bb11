package orchestrator

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// speeches/<First> [<M>.] <Last>-<YYYY>.txt
var speechNameRe = regexp.MustCompile(`(?:^|/)speeches/(([^ /]+)(?: (\pL)\.)? ([^ /]+))-(\d{4})\.txt$`)

// ParseFilename extracts speaker and year from a speech path. The text is
// left empty.
func ParseFilename(path string) (Document, error) {
	m := speechNameRe.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		return Document{}, &ParseError{
			Path:   path,
			Reason: `expected ".../speeches/First [M.] Last-YYYY.txt"`,
		}
	}
	year, err := strconv.Atoi(m[5])
	if err != nil {
		return Document{}, &ParseError{Path: path, Reason: err.Error()}
	}
	return Document{
		Path:          path,
		FullName:      m[1],
		FirstName:     m[2],
		MiddleInitial: m[3],
		LastName:      m[4],
		Year:          year,
	}, nil
}
