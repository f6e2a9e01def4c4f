// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// NotAvailable replaces build fields that were not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo is the build metadata reported by GET /version. Values are
// injected with -ldflags; empty ones read as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.commit) }

// MarshalJSON renders the info as {"version","date","commit"}.
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version string `json:"version"`
		Date    string `json:"date"`
		Commit  string `json:"commit"`
	}{
		Version: a.BuildVersion(),
		Date:    a.BuildDate(),
		Commit:  a.BuildCommit(),
	})
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
