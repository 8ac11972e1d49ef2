package storage

import "testing"

func TestSourceAverageMatchesIncrementalFormula(t *testing.T) {
	// Existing source: count=2, avg=60 (total=120). A new report with
	// confidence 90 must land on exactly (60*2+90)/3 = 70.0.
	total := 120 + 90
	count := 3
	if got := sourceAverage(total, count); got != 70.0 {
		t.Fatalf("sourceAverage = %v, want 70.0", got)
	}
}

func TestSourceAverageFirstReport(t *testing.T) {
	if got := sourceAverage(85, 1); got != 85.0 {
		t.Fatalf("sourceAverage = %v, want 85.0", got)
	}
}

func TestSourceAverageZeroCount(t *testing.T) {
	if got := sourceAverage(0, 0); got != 0 {
		t.Fatalf("sourceAverage = %v, want 0", got)
	}
}
