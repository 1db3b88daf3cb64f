// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"numclass-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_backfill_classification_log_source",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.Model(&models.ClassificationLog{}).
					Where("source IS NULL OR source = ''").
					Update("source", models.SourceAPI).Error; err != nil {
					return fmt.Errorf("failed to backfill classification log source: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "002_backfill_classification_log_countries",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.Model(&models.ClassificationLog{}).
					Where("countries IS NULL AND country IS NOT NULL").
					Update("countries", gorm.Expr("country")).Error; err != nil {
					return fmt.Errorf("failed to backfill classification log countries: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}
