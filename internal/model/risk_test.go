package model

import (
	"encoding/json"
	"testing"
)

// TestRiskLevelString tests the String method of RiskLevel.
func TestRiskLevelString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		risk     RiskLevel
		expected string
	}{
		{RiskLow, "LOW"},
		{RiskMedium, "MEDIUM"},
		{RiskHigh, "HIGH"},
		{RiskLevel(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.risk.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.risk.String(), tc.expected)
			}
		})
	}
}

// TestRiskLevelOrdering tests that risk levels are ordered correctly.
// Low < Medium < High, which the max-escalation rule depends on.
func TestRiskLevelOrdering(t *testing.T) {
	t.Parallel()

	if !(RiskLow < RiskMedium) {
		t.Error("RiskLow should be less than RiskMedium")
	}
	if !(RiskMedium < RiskHigh) {
		t.Error("RiskMedium should be less than RiskHigh")
	}
}

// TestRiskLevelJSON tests JSON round-tripping of risk levels.
func TestRiskLevelJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		risk RiskLevel
		wire string
	}{
		{RiskLow, `"low"`},
		{RiskMedium, `"medium"`},
		{RiskHigh, `"high"`},
	}

	for _, tc := range testCases {
		t.Run(tc.wire, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tc.risk)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(data) != tc.wire {
				t.Errorf("marshal = %s, expected %s", data, tc.wire)
			}

			var back RiskLevel
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if back != tc.risk {
				t.Errorf("round trip = %v, expected %v", back, tc.risk)
			}
		})
	}
}

// TestRiskLevelUnmarshalUnknown tests that unknown labels are rejected.
func TestRiskLevelUnmarshalUnknown(t *testing.T) {
	t.Parallel()

	var r RiskLevel
	if err := json.Unmarshal([]byte(`"critical"`), &r); err == nil {
		t.Error("expected error for unknown risk label")
	}
}
