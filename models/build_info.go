package models

import (
	"fmt"
	"io"
)

const buildInfoUnknown = "N/A"

// BuildInfo is the linker-injected build metadata of a binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills missing values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orUnknown := func(s string) string {
		if s == "" {
			return buildInfoUnknown
		}
		return s
	}
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// UserAgent is sent on every outbound scan API call.
func (b BuildInfo) UserAgent() string {
	return "go-airs-adapter/" + b.Version
}

// Print writes the three build lines to w.
func (b BuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", b.Version)
	fmt.Fprintf(w, "Build date: %s\n", b.Date)
	fmt.Fprintf(w, "Build commit: %s\n", b.Commit)
}
