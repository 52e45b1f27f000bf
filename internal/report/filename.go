package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultWorkbookName derives a workbook filename from the work-order
// job field when the caller does not name one.
func DefaultWorkbookName(job string) string {
	cleaned := strings.TrimSpace(job)
	if cleaned == "" {
		return "conform-report.xlsx"
	}
	titled := cases.Title(language.English).String(strings.ToLower(cleaned))
	return strings.Join(strings.Fields(titled), "") + ".xlsx"
}
