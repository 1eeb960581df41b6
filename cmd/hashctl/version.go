package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set by -ldflags "-X main.version=..." in release builds. Anything left at
// its default is filled in from the binary's embedded build info.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const libraryPath = "github.com/joshuapare/hashkit"

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Library string `json:"hashkit"`
	Go      string `json:"go"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bi, _ := debug.ReadBuildInfo()
		return runVersion(versionFrom(bi))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionFrom merges the linker-set variables with bi, which may be nil.
func versionFrom(bi *debug.BuildInfo) versionInfo {
	info := versionInfo{
		Version: version,
		Commit:  commit,
		Built:   date,
		Library: "unknown",
		Go:      runtime.Version(),
	}
	if bi == nil {
		return info
	}

	if bi.GoVersion != "" {
		info.Go = bi.GoVersion
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Built == "unknown" {
				info.Built = s.Value
			}
		}
	}
	for _, d := range bi.Deps {
		if d.Path != libraryPath {
			continue
		}
		info.Library = d.Version
		if d.Replace != nil {
			info.Library += " => " + d.Replace.Path
		}
	}
	return info
}

func runVersion(info versionInfo) error {
	if jsonOut {
		return printJSON(info)
	}
	printInfo("hashctl %s\n", info.Version)
	printInfo("  commit: %s\n", info.Commit)
	printInfo("  built: %s\n", info.Built)
	printInfo("  hashkit: %s\n", info.Library)
	printInfo("  go: %s\n", info.Go)
	return nil
}
