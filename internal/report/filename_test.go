package report

import "testing"

func TestDefaultWorkbookName(t *testing.T) {
	cases := []struct {
		job  string
		want string
	}{
		{"Dirtfixing", "Dirtfixing.xlsx"},
		{"dust busting", "DustBusting.xlsx"},
		{"  ", "conform-report.xlsx"},
		{"", "conform-report.xlsx"},
	}
	for _, tc := range cases {
		if got := DefaultWorkbookName(tc.job); got != tc.want {
			t.Fatalf("DefaultWorkbookName(%q) = %q, want %q", tc.job, got, tc.want)
		}
	}
}
