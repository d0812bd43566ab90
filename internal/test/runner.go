package itst

import (
	"strings"
	"testing"
)

var subTestName = strings.NewReplacer(" ", "_")

// subName returns the subtest part of the running test name, or an empty
// string when called from a top level test.
func subName(t *testing.T) string {
	names := strings.SplitN(t.Name(), "/", 2)
	if len(names) < 2 {
		return ""
	}
	return names[1]
}

// RunTest only lets the named subtests run, everything else is skipped. An
// empty name or "*" runs everything. It's meant to be dropped into a test
// table's option list while debugging a single case.
func RunTest(testNames ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()

		have := subName(t)
		for _, testName := range testNames {
			if testName == "" || testName == "*" {
				return
			}
			if have == subTestName.Replace(testName) {
				return
			}
		}
		t.SkipNow()
	}
}

// SkipTest skips the named subtests.
func SkipTest(testNames ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()

		have := subName(t)
		for _, testName := range testNames {
			if have == subTestName.Replace(testName) {
				t.SkipNow()
			}
		}
	}
}
