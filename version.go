package main

import (
	"log"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	panelVersion = "1.1.0"
	buildVersion = "_TAG_"
)

func init() {
	if buildVersion != ("_" + "TAG" + "_") {
		// not running in a development environment
		panelVersion = buildVersion
	}
}

// GetPanelVersion returns the current panel version
func GetPanelVersion() string {
	return panelVersion
}

// IsNewerVersion reports whether candidate is a strictly newer semantic
// version than current. Release tags may carry a leading "v". Versions that
// do not parse compare as not newer.
func IsNewerVersion(candidate, current string) bool {
	cand, err := semver.NewVersion(strings.TrimPrefix(candidate, "v"))
	if err != nil {
		log.Printf("Cannot parse version %q: %v", candidate, err)
		return false
	}
	cur, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		log.Printf("Cannot parse version %q: %v", current, err)
		return false
	}
	return cand.GreaterThan(cur)
}
