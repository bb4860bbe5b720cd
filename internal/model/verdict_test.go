package model

import (
	"strings"
	"testing"
	"time"
)

// TestAddReasonEscalatesMonotonically tests that risk only increases as
// checks fire, and the final risk is the maximum of individual checks.
func TestAddReasonEscalatesMonotonically(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		risks    []RiskLevel
		expected RiskLevel
	}{
		{"single low", []RiskLevel{RiskLow}, RiskLow},
		{"medium then high", []RiskLevel{RiskMedium, RiskHigh}, RiskHigh},
		{"high then medium does not lower", []RiskLevel{RiskHigh, RiskMedium}, RiskHigh},
		{"medium only", []RiskLevel{RiskMedium, RiskMedium}, RiskMedium},
		{"high sandwich", []RiskLevel{RiskMedium, RiskHigh, RiskLow}, RiskHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var v ScanVerdict
			for i, r := range tc.risks {
				v.AddReason("reason", r)
				if v.Risk < r {
					t.Errorf("after check %d risk = %v, below contributed %v", i, v.Risk, r)
				}
			}
			if v.Risk != tc.expected {
				t.Errorf("final risk = %v, expected %v", v.Risk, tc.expected)
			}
			if len(v.Reasons) != len(tc.risks) {
				t.Errorf("reasons length = %d, expected %d", len(v.Reasons), len(tc.risks))
			}
		})
	}
}

// TestFinalize tests safe/unsafe derivation and the sentinel reason.
func TestFinalize(t *testing.T) {
	t.Parallel()

	t.Run("no triggered checks yields safe sentinel verdict", func(t *testing.T) {
		t.Parallel()

		var v ScanVerdict
		v.Finalize()

		if !v.IsSafe {
			t.Error("verdict should be safe")
		}
		if v.Risk != RiskLow {
			t.Errorf("risk = %v, expected RiskLow", v.Risk)
		}
		if len(v.Reasons) != 1 || v.Reasons[0] != NoFindingsReason {
			t.Errorf("reasons = %v, expected only the sentinel", v.Reasons)
		}
	})

	t.Run("any triggered check yields unsafe verdict", func(t *testing.T) {
		t.Parallel()

		var v ScanVerdict
		v.AddReason("Domain contains suspicious terms", RiskMedium)
		v.Finalize()

		if v.IsSafe {
			t.Error("verdict should be unsafe")
		}
		if len(v.Reasons) != 1 || v.Reasons[0] == NoFindingsReason {
			t.Errorf("reasons = %v, sentinel must not replace real reasons", v.Reasons)
		}
	})
}

// TestMarkReported tests the display-state patch applied after a manual report.
func TestMarkReported(t *testing.T) {
	t.Parallel()

	v := ScanVerdict{IsSafe: true, Risk: RiskLow, Reasons: []string{"Domain is verified and trusted"}}
	v.MarkReported()

	if v.IsSafe {
		t.Error("reported verdict should be unsafe")
	}
	if v.Risk != RiskHigh {
		t.Errorf("risk = %v, expected RiskHigh", v.Risk)
	}
	if !v.Reported {
		t.Error("Reported flag should be set")
	}
	if v.Reasons[len(v.Reasons)-1] != ReportedReason {
		t.Errorf("last reason = %q, expected %q", v.Reasons[len(v.Reasons)-1], ReportedReason)
	}
	if len(v.Reasons) != 2 {
		t.Errorf("prior reasons must be preserved, got %v", v.Reasons)
	}
}

// TestSummary tests the history result summary line.
func TestSummary(t *testing.T) {
	t.Parallel()

	safe := ScanVerdict{IsSafe: true, Risk: RiskLow}
	if safe.Summary() != "Safe" {
		t.Errorf("summary = %q, expected Safe", safe.Summary())
	}

	bad := ScanVerdict{IsSafe: false, Risk: RiskHigh}
	if bad.Summary() != "Suspicious (high risk)" {
		t.Errorf("summary = %q, expected Suspicious (high risk)", bad.Summary())
	}
}

// TestNewEmailHistoryEntry tests email target truncation.
func TestNewEmailHistoryEntry(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("Received: from mx.example.com\n", 5)
	v := ScanVerdict{IsSafe: false, Risk: RiskMedium}
	entry := NewEmailHistoryEntry(long, &v, time.Now())

	if entry.Type != ScanTypeEmail {
		t.Errorf("type = %q, expected %q", entry.Type, ScanTypeEmail)
	}
	if !strings.HasSuffix(entry.Target, "...") {
		t.Errorf("long target should be truncated with ellipsis: %q", entry.Target)
	}
	if len(entry.Target) != emailTargetLimit+3 {
		t.Errorf("target length = %d, expected %d", len(entry.Target), emailTargetLimit+3)
	}

	short := "From: a@b.c"
	entry = NewEmailHistoryEntry(short, &v, time.Now())
	if entry.Target != short {
		t.Errorf("short target should be kept as-is, got %q", entry.Target)
	}
}
