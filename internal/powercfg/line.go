package powercfg

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// lineKind tags the semantic category of one raw powercfg output line.
type lineKind int

const (
	lineUnrecognized lineKind = iota
	linePlan
	lineSubGroupHeader
	lineSettingHeader
	lineOptionIndex
	lineOptionName
	lineRangeMin
	lineRangeMax
	lineCurrentAC
	lineCurrentDC
)

// Field labels powercfg prints verbatim in /l and /q output.
const (
	markerSubGroup    = "SubGroup GUID:"
	markerSetting     = "Power Setting GUID:"
	markerOptionIndex = "Possible Setting Index:"
	markerOptionName  = "Possible Setting Friendly Name:"
	markerRangeMin    = "Minimum Possible Setting:"
	markerRangeMax    = "Maximum Possible Setting:"
	markerCurrentAC   = "Current AC Power Setting Index:"
	markerCurrentDC   = "Current DC Power Setting Index:"
)

// line is one classified output line. Only the fields meaningful for the
// kind are populated: name/id/active for header and plan rows, name for
// option-name lines, value for the numeric kinds.
type line struct {
	kind   lineKind
	name   string
	id     string
	value  uint64
	active bool
}

// classify maps a raw output line to its tagged form. Banner text, GUID
// alias rows, units rows and anything else unrecognized come back as
// lineUnrecognized and are skipped by the parsers.
func classify(raw string) line {
	switch {
	case strings.Contains(raw, markerSubGroup):
		return headerLine(lineSubGroupHeader, raw)
	case strings.Contains(raw, markerSetting):
		return headerLine(lineSettingHeader, raw)
	case strings.Contains(raw, markerOptionIndex):
		return valueLine(lineOptionIndex, raw, markerOptionIndex)
	case strings.Contains(raw, markerOptionName):
		name := strings.TrimSpace(afterMarker(raw, markerOptionName))
		if name == "" {
			return line{}
		}
		return line{kind: lineOptionName, name: name}
	case strings.Contains(raw, markerRangeMin):
		return valueLine(lineRangeMin, raw, markerRangeMin)
	case strings.Contains(raw, markerRangeMax):
		return valueLine(lineRangeMax, raw, markerRangeMax)
	case strings.Contains(raw, markerCurrentAC):
		return valueLine(lineCurrentAC, raw, markerCurrentAC)
	case strings.Contains(raw, markerCurrentDC):
		return valueLine(lineCurrentDC, raw, markerCurrentDC)
	}

	// Plan rows carry no field label, just a GUID and a parenthesized
	// display name, with a trailing star on the active scheme.
	id, ok := guidToken(raw)
	if !ok {
		return line{}
	}
	name, ok := displayName(raw)
	if !ok {
		return line{}
	}
	return line{
		kind:   linePlan,
		name:   name,
		id:     id,
		active: strings.HasSuffix(strings.TrimSpace(raw), "*"),
	}
}

func headerLine(kind lineKind, raw string) line {
	id, ok := guidToken(raw)
	if !ok {
		return line{}
	}
	name, ok := displayName(raw)
	if !ok {
		return line{}
	}
	return line{kind: kind, name: name, id: id}
}

func valueLine(kind lineKind, raw, marker string) line {
	v, ok := parseSettingValue(afterMarker(raw, marker))
	if !ok {
		return line{}
	}
	return line{kind: kind, value: v}
}

func afterMarker(raw, marker string) string {
	i := strings.Index(raw, marker)
	return raw[i+len(marker):]
}

// displayName extracts the text between the first '(' and the matching ')'.
func displayName(raw string) (string, bool) {
	open := strings.Index(raw, "(")
	if open < 0 {
		return "", false
	}
	closeIdx := strings.Index(raw[open:], ")")
	if closeIdx < 0 {
		return "", false
	}
	return raw[open+1 : open+closeIdx], true
}

// guidToken scans whitespace-delimited tokens for the first canonical
// 8-4-4-4-12 GUID containing at least one digit.
func guidToken(raw string) (string, bool) {
	for _, tok := range strings.Fields(raw) {
		if len(tok) != 36 {
			continue
		}
		if !strings.ContainsAny(tok, "0123456789") {
			continue
		}
		if _, err := uuid.Parse(tok); err != nil {
			continue
		}
		return tok, true
	}
	return "", false
}

// parseSettingValue parses the numeric payload of a value line. powercfg
// prints both 0x-prefixed hex (current indices, ranges) and zero-padded
// decimal (possible setting indices); leading zeros never mean octal.
func parseSettingValue(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		v, err := strconv.ParseUint(hex, 16, 64)
		return v, err == nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	return v, err == nil
}

// splitLines splits raw command output into lines, tolerating CRLF.
func splitLines(out []byte) []string {
	s := strings.ReplaceAll(string(out), "\r\n", "\n")
	return strings.Split(s, "\n")
}
