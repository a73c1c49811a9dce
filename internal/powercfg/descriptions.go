package powercfg

import (
	"context"
	"strings"
)

// DescriptionSource provides human descriptions for plan display names.
// It is an optional enrichment collaborator: ListPlans treats any failure
// as "no descriptions available".
type DescriptionSource interface {
	Descriptions(ctx context.Context) (map[string]string, error)
}

// cimDescriptionScript prints one "name|description" row per power plan
// known to WMI. The pipe is safe as a separator: plan names cannot
// contain it.
const cimDescriptionScript = `Get-CimInstance -Namespace root/cimv2/power -ClassName Win32_PowerPlan | ForEach-Object { $_.ElementName + '|' + $_.Description }`

// CIMDescriptionSource reads plan descriptions from Win32_PowerPlan via
// PowerShell, over the same runner the powercfg commands use.
type CIMDescriptionSource struct {
	Runner Runner
}

// Descriptions returns a display-name to description map.
func (s CIMDescriptionSource) Descriptions(ctx context.Context) (map[string]string, error) {
	command := `powershell -NoProfile -NonInteractive -Command "` + cimDescriptionScript + `"`
	out, err := s.Runner.Run(ctx, command)
	if err != nil {
		return nil, err
	}

	desc := make(map[string]string)
	for _, raw := range splitLines(out) {
		name, text, ok := strings.Cut(raw, "|")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		text = strings.TrimSpace(text)
		if name == "" || text == "" {
			continue
		}
		desc[name] = text
	}
	return desc, nil
}
