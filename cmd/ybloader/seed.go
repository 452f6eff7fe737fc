package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Baterdene23/yellbook/internal/domain"
	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
)

type entryCreator interface {
	Create(ctx context.Context, e domentry.Entry) error
}

// sampleEntries is the demo directory: a handful of Ulaanbaatar businesses.
var sampleEntries = []domentry.Params{
	{
		Name:        "Tech Solutions Inc.",
		Summary:     "Веб хөгжүүлэлтийн мэргэжлийн компани",
		Description: "Вэб сайт, мобайл аппликейшн хөгжүүлэлтийн үйлчилгээ",
		Category:    "Technology",
		District:    "Сүхбаатар",
		Province:    "Улаанбаатар",
		Phone:       "+976-7010-0101",
		Email:       "contact@techsolutions.mn",
		Address:     "Сүхбаатар дүүрэг, 1-р хороо, Улаанбаатар",
		Website:     "https://techsolutions.mn",
	},
	{
		Name:        "Green Leaf Restaurant",
		Summary:     "Байгальд ээлтэй органик ресторан",
		Description: "Орон нутгийн түүхий эдээр бэлтгэсэн органик хоол",
		Category:    "Food & Dining",
		District:    "Хан-Уул",
		Province:    "Улаанбаатар",
		Phone:       "+976-7010-0102",
		Email:       "info@greenleaf.mn",
		Address:     "Хан-Уул дүүрэг, 5-р хороо, Улаанбаатар",
		Website:     "https://greenleaf.mn",
	},
	{
		Name:        "Fit Life Gym",
		Summary:     "Орчин үеийн дасгал хийх төв",
		Description: "Фитнесс заал, бүлгийн хичээл, хувийн дасгалжуулагч",
		Category:    "Health & Fitness",
		District:    "Баянгол",
		Province:    "Улаанбаатар",
		Phone:       "+976-7010-0103",
		Email:       "membership@fitlife.mn",
		Address:     "Баянгол дүүрэг, 8-р хороо, Улаанбаатар",
		Website:     "https://fitlifegym.mn",
	},
	{
		Name:        "Номын дэлгүүр",
		Summary:     "Ховор номын цуглуулгатай номын дэлгүүр",
		Description: "Монгол болон гадаад ном, ховор хэвлэлүүд",
		Category:    "Retail",
		District:    "Сонгинохайрхан",
		Province:    "Улаанбаатар",
		Phone:       "+976-7010-0104",
		Address:     "Сонгинохайрхан дүүрэг, 2-р хороо, Улаанбаатар",
	},
	{
		Name:        "Бүтээлч Дизайн Агентлаг",
		Summary:     "Орчин үеийн брэндүүдэд зориулсан дизайн, маркетингийн агентлаг",
		Description: "Брэндинг, график дизайн, дижитал маркетинг",
		Category:    "Marketing",
		District:    "Чингэлтэй",
		Province:    "Улаанбаатар",
		Phone:       "+976-7010-0105",
		Email:       "hello@creativeagency.mn",
		Address:     "Чингэлтэй дүүрэг, 4-р хороо, Улаанбаатар",
		Website:     "https://creativeagency.mn",
	},
}

// seedEntries loads the sample directory. Existing entries with the same
// generated IDs cannot collide (UUIDs), so reruns add duplicates by design —
// wipe the namespace first if a clean slate is needed.
func seedEntries(ctx context.Context, repo entryCreator, logger *zap.Logger) error {
	now := time.Now().UTC()

	for _, p := range sampleEntries {
		e, err := domentry.New(uuid.NewString(), p, now)
		if err != nil {
			return fmt.Errorf("build seed entry %q: %w", p.Name, err)
		}

		if err := repo.Create(ctx, e); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				logger.Info("Entry already present, skipping", zap.String("name", p.Name))
				continue
			}
			return fmt.Errorf("seed entry %q: %w", p.Name, err)
		}
		logger.Info("Seeded entry", zap.String("id", e.ID()), zap.String("name", p.Name))
	}

	logger.Info("Seeding finished", zap.Int("entries", len(sampleEntries)))
	return nil
}
