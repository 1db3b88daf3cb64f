// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"errors"
	"fmt"
	"os"

	"numclass-server/commons/numplan"
)

var Plans *numplan.LookupIndex

func InitNumberingPlans() {
	idx, err := LoadNumberingPlans(
		GetEnv("NUMBERING_PLAN_PATH", "numbering_plans.json"),
		GetEnv("NUMBERING_PLAN_OVERWRITE_PATH", "numbering_plans_overwrite.json"),
	)
	if err != nil {
		Logger.Fatalf("Failed to load numbering plan data: %v", err)
	}
	Plans = idx
}

// LoadNumberingPlans reads the base file and, when present, the overwrite file.
// A broken overwrite file is logged and ignored; a broken base file is an error.
func LoadNumberingPlans(basePath, overwritePath string) (*numplan.LookupIndex, error) {
	entries, err := numplan.LoadJSON(basePath)
	if err != nil {
		return nil, err
	}

	if overwritePath != "" {
		if _, err := os.Stat(overwritePath); err == nil {
			overwriteEntries, err := numplan.LoadJSON(overwritePath)
			if err != nil {
				Logger.Warnf("Failed to load numbering plan overwrite data: %v", err)
			} else {
				entries = numplan.Merge(entries, overwriteEntries)
				Logger.Infof("Loaded %d numbering plan overwrite entries", len(overwriteEntries))
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			Logger.Warnf("Cannot stat numbering plan overwrite file: %v", err)
		}
	}

	for _, m := range numplan.Lint(entries) {
		Logger.Warnf("Numbering plan %s declares country code %s, libphonenumber knows %d", m.ID, m.Declared, m.Known)
	}

	table, err := numplan.Compile(entries)
	if err != nil {
		return nil, fmt.Errorf("compile numbering plans: %w", err)
	}

	Logger.Infof("Loaded %d numbering plans", len(table))
	return numplan.BuildIndex(table), nil
}
