// Copyright © 2018 One Concern

package cmd

import (
	"bytes"
)

// Build information, set with -ldflags -X
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// VersionInfo describes the build of the binary
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty"`
}

// NewVersionInfo from build information
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf bytes.Buffer
	buf.WriteString("Version: ")
	buf.WriteString(v.Version)
	buf.WriteString("\n")
	if v.BuildDate != "" {
		buf.WriteString("Build date: ")
		buf.WriteString(v.BuildDate)
		buf.WriteString("\n")
	}
	if v.GitCommit != "" {
		buf.WriteString("Commit: ")
		buf.WriteString(v.GitCommit)
		buf.WriteString("\n")
	}
	if v.GitState != "" {
		buf.WriteString("Working tree: ")
		buf.WriteString(v.GitState)
		buf.WriteString("\n")
	}
	return buf.String()
}
