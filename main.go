// powerplan — power scheme management over powercfg
//
// A single binary that inspects and mutates Windows power schemes by
// driving the powercfg utility, locally or on a remote host over SSH or
// WinRM.
//
// Usage:
//
//	powerplan list                                  # plan table
//	powerplan query --subgroup Sleep                # drill into the active plan
//	powerplan set --subgroup Display --setting "Turn off" --value 300 --ac
//	powerplan activate "High performance"
//	powerplan --host lab-01 list                    # against an inventory host
package main

import "github.com/opsforge-io/powerplan/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
