package main

import (
	"context"
	"flag"
	"log"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/scheduling"
	"salon-booking/internal/usecase"
	"salon-booking/internal/wire"
	"salon-booking/pkg/apperror"
	"salon-booking/pkg/database"
	"salon-booking/pkg/utils"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	reset := flag.Bool("reset", false, "truncate bookings, staff and services first")
	bookings := flag.Int("bookings", 40, "number of demo bookings to attempt")
	flag.Parse()

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// seeding never sends real mail
	config.Email.Enabled = false

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, logger); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	if *reset {
		if _, err := db.Exec(ctx, "TRUNCATE bookings, staff, services"); err != nil {
			logger.Fatal("Failed to reset tables", zap.Error(err))
		}
		logger.Info("Tables truncated")
	}

	repo := repository.NewRepository(db, logger)

	existing, err := repo.Service.List(ctx, entity.ServiceFilter{})
	if err != nil {
		logger.Fatal("Failed to list services", zap.Error(err))
	}
	if len(existing) > 0 {
		logger.Info("Catalog already seeded, run with -reset to start over", zap.Int("services", len(existing)))
		return
	}

	services, err := seedServices(ctx, repo)
	if err != nil {
		logger.Fatal("Failed to seed services", zap.Error(err))
	}
	staff, err := seedStaff(ctx, repo, services)
	if err != nil {
		logger.Fatal("Failed to seed staff", zap.Error(err))
	}
	logger.Info("Catalog seeded", zap.Int("services", len(services)), zap.Int("staff", len(staff)))

	clock := scheduling.NewSystemClock(config.Scheduling.Location())
	booking := usecase.NewBookingService(repo, config.Scheduling, usecase.Options{
		Locker:   scheduling.NewLocalLocker(),
		Notifier: wire.NewNotifier(config, logger),
		Clock:    clock,
		Metrics:  wire.NewMetrics(config, prometheus.NewRegistry()),
	}, logger)

	created := seedBookings(ctx, booking, clock, services, staff, *bookings, logger)
	logger.Info("Seed complete", zap.Int("bookings", created))
}

func seedServices(ctx context.Context, repo *repository.Repository) ([]*entity.Service, error) {
	now := time.Now()
	services := []*entity.Service{
		{Name: "Signature Cut & Style", Description: "Precision haircut with personalized styling consultation and luxury finish", Duration: 90, Price: 125, Category: entity.CategoryHairDesign},
		{Name: "Color Transformation", Description: "Complete color makeover with premium treatment and gloss finish", Duration: 180, Price: 285, Category: entity.CategoryColorServices},
		{Name: "Balayage Highlights", Description: "Hand-painted highlights for natural, sun-kissed dimension", Duration: 150, Price: 225, Category: entity.CategoryColorServices},
		{Name: "Keratin Treatment", Description: "Smoothing treatment for frizz-free hair for up to 4 months", Duration: 120, Price: 195, Category: entity.CategoryHairTreatments},
		{Name: "Bridal Hair & Makeup", Description: "Complete bridal beauty package with trial session included", Duration: 240, Price: 450, Category: entity.CategorySpecialOccasions},
		{Name: "Hair Extensions", Description: "Premium tape-in or clip-in extensions for length and volume", Duration: 120, Price: 350, Category: entity.CategoryExtensions},
		{Name: "Deep Conditioning Treatment", Description: "Intensive moisture therapy with scalp massage and steam", Duration: 60, Price: 85, Category: entity.CategoryHairTreatments},
		{Name: "Men's Cut & Style", Description: "Modern men's haircut with beard trim and styling", Duration: 45, Price: 65, Category: entity.CategoryMensServices},
	}

	for _, s := range services {
		s.Base = entity.NewBase(now)
		s.IsActive = true
		if err := repo.Service.Create(ctx, s); err != nil {
			return nil, err
		}
	}
	return services, nil
}

func weekCalendar(weekdayStart, weekdayEnd, satStart, satEnd string, sundayOn bool, sunStart, sunEnd string) entity.Calendar {
	cal := entity.StandardCalendar(weekdayStart, weekdayEnd)
	cal[entity.WeekdayKey(time.Saturday)] = entity.WorkingHours{Start: satStart, End: satEnd, IsWorking: true}
	cal[entity.WeekdayKey(time.Sunday)] = entity.WorkingHours{Start: sunStart, End: sunEnd, IsWorking: sundayOn}
	return cal
}

func seedStaff(ctx context.Context, repo *repository.Repository, s []*entity.Service) ([]*entity.Staff, error) {
	now := time.Now()
	ids := func(idx ...int) []uuid.UUID {
		out := make([]uuid.UUID, len(idx))
		for i, n := range idx {
			out[i] = s[n].ID
		}
		return out
	}

	staff := []*entity.Staff{
		{
			Name:         "Isabella Martinez",
			Title:        "Master Colorist & Creative Director",
			Email:        "isabella@luxehairstudio.com",
			Phone:        "(555) 123-4567",
			ServiceIDs:   ids(0, 1, 2, 4),
			WorkingHours: weekCalendar("09:00", "18:00", "08:00", "17:00", false, "10:00", "16:00"),
			Specialties:  []string{"Color Correction", "Balayage", "Creative Color"},
		},
		{
			Name:         "Sophia Chen",
			Title:        "Senior Stylist & Extension Specialist",
			Email:        "sophia@luxehairstudio.com",
			Phone:        "(555) 234-5678",
			ServiceIDs:   ids(0, 3, 5, 6),
			WorkingHours: weekCalendar("10:00", "19:00", "09:00", "18:00", false, "11:00", "17:00"),
			Specialties:  []string{"Extensions", "Hair Treatments", "Precision Cuts"},
		},
		{
			Name:         "Aria Thompson",
			Title:        "Bridal & Special Events Specialist",
			Email:        "aria@luxehairstudio.com",
			Phone:        "(555) 345-6789",
			ServiceIDs:   ids(0, 4, 6),
			WorkingHours: weekCalendar("09:00", "17:00", "08:00", "18:00", true, "10:00", "16:00"),
			Specialties:  []string{"Bridal Hair", "Updos", "Special Events"},
		},
		{
			Name:         "Marcus Rodriguez",
			Title:        "Men's Grooming Specialist",
			Email:        "marcus@luxehairstudio.com",
			Phone:        "(555) 456-7890",
			ServiceIDs:   ids(7, 0),
			WorkingHours: weekCalendar("08:00", "16:00", "09:00", "17:00", false, "10:00", "15:00"),
			Specialties:  []string{"Men's Cuts", "Beard Styling", "Classic Grooming"},
		},
	}

	for _, m := range staff {
		m.Base = entity.NewBase(now)
		m.IsActive = true
		if err := repo.Staff.Create(ctx, m); err != nil {
			return nil, err
		}
	}
	return staff, nil
}

// seedBookings books random customers into free slots over the next two
// weeks through the booking service, so every demo booking obeys the
// same conflict rules as the API.
func seedBookings(
	ctx context.Context,
	svc usecase.BookingService,
	clock scheduling.Clock,
	services []*entity.Service,
	staff []*entity.Staff,
	count int,
	logger *zap.Logger,
) int {
	today := scheduling.Today(clock)
	created := 0

	for i := 0; i < count; i++ {
		member := staff[gofakeit.Number(0, len(staff)-1)]
		offered := member.ServiceIDs[gofakeit.Number(0, len(member.ServiceIDs)-1)]

		var service *entity.Service
		for _, s := range services {
			if s.ID == offered {
				service = s
			}
		}

		date := today.AddDate(0, 0, gofakeit.Number(1, 14))
		slots, err := svc.AvailableSlots(ctx, &request.AvailableSlotsRequest{
			StaffID:  member.ID.String(),
			Date:     entity.FormatDate(date),
			Duration: service.Duration,
		})
		if err != nil || len(slots) == 0 {
			continue
		}
		slot := slots[gofakeit.Number(0, len(slots)-1)]

		_, err = svc.CreateBooking(ctx, &request.CreateBookingRequest{
			ServiceID:     service.ID.String(),
			StaffID:       member.ID.String(),
			CustomerName:  gofakeit.Name(),
			CustomerEmail: gofakeit.Email(),
			CustomerPhone: gofakeit.Phone(),
			Date:          entity.FormatDate(date),
			Time:          slot.Time,
			Notes:         gofakeit.Sentence(6),
		})
		switch {
		case err == nil:
			created++
		case apperror.Is(err, apperror.KindSlotConflict), apperror.Is(err, apperror.KindValidation):
			logger.Debug("Skipped demo booking", zap.Error(err))
		default:
			logger.Warn("Failed to create demo booking", zap.Error(err))
		}
	}

	return created
}
