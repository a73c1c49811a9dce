package powercfg

import (
	"context"
	"fmt"
	"os"
	"testing"
)

// GUIDs used across the testdata captures.
const (
	planBalanced = "381b4222-f694-41f0-9685-ff5bb260df2e"
	planHighPerf = "8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c"
	planSaver    = "a1841308-3541-4fab-bc81-f71556f20b4a"
	subSleep     = "238c9fa8-0aad-41ed-83f4-97be242c8f20"
	subDisplay   = "7516b95f-f776-4464-8c53-06167f40cc99"
	setSleep     = "29f6c1db-86da-48c5-9fdb-f2b67b1f44da"
	setHybrid    = "94ac6d29-73ce-41a6-809f-6363ba21b47e"
	setTurnOff   = "3c0bc021-c8a8-4e07-a973-6b14cbcb2b7e"
)

func loadTestData(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to load test data %s: %v", name, err)
	}
	return string(data)
}

// fakeRunner serves canned output per command line and records every call.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, command string) ([]byte, error) {
	f.calls = append(f.calls, command)
	if err, ok := f.errs[command]; ok {
		return nil, err
	}
	out, ok := f.outputs[command]
	if !ok {
		return nil, fmt.Errorf("unexpected command: %q", command)
	}
	return []byte(out), nil
}

// balancedQueryRunner wires the full nested /q conversation for the
// Balanced plan captures.
func balancedQueryRunner(t *testing.T) *fakeRunner {
	t.Helper()
	return &fakeRunner{outputs: map[string]string{
		"powercfg /l":                                                       loadTestData(t, "powercfg-list.txt"),
		"powercfg /q " + planBalanced:                                       loadTestData(t, "powercfg-query-plan.txt"),
		"powercfg /q " + planBalanced + " " + subSleep:                      loadTestData(t, "powercfg-query-subgroup-sleep.txt"),
		"powercfg /q " + planBalanced + " " + subDisplay:                    loadTestData(t, "powercfg-query-subgroup-display.txt"),
		"powercfg /q " + planBalanced + " " + subSleep + " " + setSleep:     loadTestData(t, "powercfg-query-setting-sleepafter.txt"),
		"powercfg /q " + planBalanced + " " + subSleep + " " + setHybrid:    loadTestData(t, "powercfg-query-setting-hybrid.txt"),
		"powercfg /q " + planBalanced + " " + subDisplay + " " + setTurnOff: loadTestData(t, "powercfg-query-setting-turnoff.txt"),
	}}
}
