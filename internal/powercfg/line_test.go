package powercfg

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		desc string
		raw  string
		want line
	}{
		{
			"active plan row",
			"Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced) *",
			line{kind: linePlan, name: "Balanced", id: planBalanced, active: true},
		},
		{
			"inactive plan row",
			"Power Scheme GUID: a1841308-3541-4fab-bc81-f71556f20b4a  (Power saver)",
			line{kind: linePlan, name: "Power saver", id: planSaver},
		},
		{
			"subgroup header",
			"  SubGroup GUID: 238c9fa8-0aad-41ed-83f4-97be242c8f20  (Sleep)",
			line{kind: lineSubGroupHeader, name: "Sleep", id: subSleep},
		},
		{
			"setting header",
			"    Power Setting GUID: 29f6c1db-86da-48c5-9fdb-f2b67b1f44da  (Sleep after)",
			line{kind: lineSettingHeader, name: "Sleep after", id: setSleep},
		},
		{
			"option index with zero padding",
			"      Possible Setting Index: 001",
			line{kind: lineOptionIndex, value: 1},
		},
		{
			"option friendly name",
			"      Possible Setting Friendly Name: Hibernate after",
			line{kind: lineOptionName, name: "Hibernate after"},
		},
		{
			"range minimum hex",
			"      Minimum Possible Setting: 0x00000000",
			line{kind: lineRangeMin, value: 0},
		},
		{
			"range maximum hex",
			"      Maximum Possible Setting: 0xffffffff",
			line{kind: lineRangeMax, value: 0xffffffff},
		},
		{
			"current ac index",
			"    Current AC Power Setting Index: 0x0000012c",
			line{kind: lineCurrentAC, value: 300},
		},
		{
			"current dc index",
			"    Current DC Power Setting Index: 0x0000003c",
			line{kind: lineCurrentDC, value: 60},
		},
		{
			"listing banner has parens but no guid",
			"Existing Power Schemes (* Active)",
			line{},
		},
		{
			"underline",
			"-----------------------------------",
			line{},
		},
		{
			"blank",
			"",
			line{},
		},
		{
			"guid alias row",
			"    GUID Alias: SUB_SLEEP",
			line{},
		},
		{
			"units row",
			"      Possible Settings units: Seconds",
			line{},
		},
		{
			"guid without parenthesized name",
			"Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e",
			line{},
		},
		{
			"subgroup header missing guid",
			"  SubGroup GUID: not-a-guid  (Sleep)",
			line{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got := classify(tc.raw)
			if got != tc.want {
				t.Errorf("classify(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestGuidToken(t *testing.T) {
	tests := []struct {
		desc   string
		raw    string
		want   string
		wantOK bool
	}{
		{"plain", "x 381b4222-f694-41f0-9685-ff5bb260df2e y", planBalanced, true},
		{"no digits", "abcdefab-abcd-efab-cdef-abcdefabcdef", "", false},
		{"wrong shape", "381b4222f69441f09685ff5bb260df2e", "", false},
		{"wrong group sizes", "381b42-22f694-41f0-9685-ff5bb260df2e", "", false},
		{"embedded in longer token", "id=381b4222-f694-41f0-9685-ff5bb260df2e", "", false},
		{"first of two", "381b4222-f694-41f0-9685-ff5bb260df2e 8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c", planBalanced, true},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got, ok := guidToken(tc.raw)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("guidToken(%q) = %q, %v; want %q, %v", tc.raw, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestParseSettingValue(t *testing.T) {
	tests := []struct {
		in     string
		want   uint64
		wantOK bool
	}{
		{" 0x0000012c", 300, true},
		{"0x00000000", 0, true},
		{"000", 0, true},
		{"007", 7, true},
		{"42", 42, true},
		{"0xffffffff", 0xffffffff, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
		{"0x", 0, false},
	}

	for _, tc := range tests {
		got, ok := parseSettingValue(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("parseSettingValue(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if name, ok := displayName("guid  (Power saver) *"); !ok || name != "Power saver" {
		t.Errorf("expected Power saver, got %q %v", name, ok)
	}
	if name, ok := displayName("guid  (a(b)"); !ok || name != "a(b" {
		t.Errorf("first-paren extraction: got %q %v", name, ok)
	}
	if _, ok := displayName("no parens here"); ok {
		t.Error("expected no match without parentheses")
	}
}
