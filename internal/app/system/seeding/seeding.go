// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	announcementstore "github.com/dalemusser/stratalinks/internal/app/store/announcement"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedStaffAnnouncements(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedStaffAnnouncements creates the sample selection results used in
// development and demos. Records are keyed by NRP, so reruns are no-ops.
func seedStaffAnnouncements(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := announcementstore.New(db)

	samples := []announcementstore.CreateInput{
		{NRP: "500000001", Name: "Abdullah Azzam", Codename: "JMMI-2026-X7Y"},
		{NRP: "500000002", Name: "Budi Santoso", Codename: "JMMI-2026-A1B"},
		{NRP: "500000003", Name: "Siti Aminah", Codename: "JMMI-2026-C3D"},
	}

	for _, sample := range samples {
		exists, err := store.ExistsByNRP(ctx, sample.NRP)
		if err != nil {
			logger.Error("failed to check staff announcement",
				zap.String("nrp", sample.NRP),
				zap.Error(err))
			return err
		}
		if !exists {
			if _, err := store.Create(ctx, sample); err != nil {
				logger.Error("failed to seed staff announcement",
					zap.String("nrp", sample.NRP),
					zap.Error(err))
				return err
			}
			logger.Info("seeded staff announcement", zap.String("nrp", sample.NRP))
		}
	}

	return nil
}
