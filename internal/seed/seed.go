package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/showtimestaff/event-staffing/backend/internal/config"
	"github.com/showtimestaff/event-staffing/backend/internal/domain"
	"github.com/showtimestaff/event-staffing/backend/internal/repository"
	"github.com/showtimestaff/event-staffing/backend/internal/schedule"
	"github.com/showtimestaff/event-staffing/backend/internal/utils"
)

var locations = []string{
	"Hall A", "Hall B", "Grand Ballroom", "Convention Center",
	"Riverside Stage", "Exhibition Hall 3", "The Warehouse",
}

var positionNames = []string{
	"Stagehand", "Rigger", "Audio Technician", "Lighting Technician",
	"Forklift Operator", "Loader", "Camera Operator",
}

type Seeder struct {
	cfg  *config.Config
	repo *repository.Repository
}

func NewSeeder(cfg *config.Config, repo *repository.Repository) *Seeder {
	return &Seeder{cfg: cfg, repo: repo}
}

func (s *Seeder) Seed(managerCount, crewCount, eventsPerManager int) error {
	crew := make([]*domain.User, 0, crewCount)
	for i := 0; i < crewCount; i++ {
		user, err := utils.GenerateRandomUser(domain.RoleCrew, s.cfg.Seed.User.Password, "example.com")
		if err != nil {
			return err
		}
		if err := s.repo.CreateUser(user); err != nil {
			return fmt.Errorf("seed crew: %w", err)
		}
		crew = append(crew, user)
	}

	for i := 0; i < managerCount; i++ {
		manager, err := utils.GenerateRandomUser(domain.RoleManager, s.cfg.Seed.User.Password, "example.com")
		if err != nil {
			return err
		}
		if err := s.repo.CreateUser(manager); err != nil {
			return fmt.Errorf("seed manager: %w", err)
		}

		for j := 0; j < eventsPerManager; j++ {
			event := randomEvent(manager.ID)
			if err := s.repo.CreateEventGraph(event); err != nil {
				return fmt.Errorf("seed event: %w", err)
			}

			if err := s.hireSomeCrew(event, crew); err != nil {
				return err
			}
		}
	}

	return nil
}

func randomEvent(managerID int64) *domain.Event {
	start := time.Now().AddDate(0, 0, rand.Intn(60)-15).Truncate(24 * time.Hour)
	days := rand.Intn(5) + 1
	end := start.AddDate(0, 0, days-1)

	event := &domain.Event{
		ManagerID: managerID,
		Name:      "Event " + utils.GenerateRandomID(3, 3),
		Overview:  "Seeded staffing event",
		Location:  locations[rand.Intn(len(locations))],
		Status:    domain.EventStatusOpen,
		FromDate:  start,
		ToDate:    end,
	}

	positionCount := rand.Intn(3) + 1
	for p := 0; p < positionCount; p++ {
		position := &domain.Position{
			Name:        positionNames[rand.Intn(len(positionNames))],
			ArrivalDate: start,
			EndDate:     end,
		}
		position.Days = append(position.Days, randomDay(start, end))
		event.Positions = append(event.Positions, position)
	}

	return event
}

// randomDay builds a shift definition and runs it through the same
// expansion the API uses, so seeded details obey the one-slot-per-day
// rule.
func randomDay(start, end time.Time) *domain.Day {
	fromHour := rand.Intn(24)
	durationHours := rand.Intn(10) + 2
	toHour := (fromHour + durationHours) % 24

	rate := float64(rand.Intn(40) + 15)
	day := &domain.Day{
		FromDate:   start.Format("2006-01-02"),
		ToDate:     end.Format("2006-01-02"),
		FromTime:   fmt.Sprintf("%02d:00:00", fromHour),
		ToTime:     fmt.Sprintf("%02d:00:00", toHour),
		Quantity:   int32(rand.Intn(6) + 1),
		HourlyRate: &rate,
	}

	dateRange, _ := schedule.ParseDateRange(day.FromDate, day.ToDate)
	window, _ := schedule.ParseWindow(day.FromTime, day.ToTime)
	for _, slot := range schedule.Expand(dateRange, window) {
		day.Details = append(day.Details, &domain.DayDetail{
			FromTimestamp: slot.From,
			ToTimestamp:   slot.To,
		})
	}

	return day
}

func (s *Seeder) hireSomeCrew(event *domain.Event, crew []*domain.User) error {
	if len(crew) == 0 {
		return nil
	}

	for _, position := range event.Positions {
		for _, day := range position.Days {
			for _, detail := range day.Details {
				if rand.Intn(3) != 0 {
					continue
				}

				status := domain.JobStatusApplied
				if rand.Intn(2) == 0 {
					status = domain.JobStatusHired
				}

				job := &domain.Job{
					UserID:      crew[rand.Intn(len(crew))].ID,
					EventID:     event.ID,
					PositionID:  position.ID,
					DayID:       day.ID,
					DayDetailID: detail.ID,
					Status:      status,
				}
				if err := s.repo.CreateJob(job); err != nil {
					return fmt.Errorf("seed job: %w", err)
				}
			}
		}
	}

	return nil
}
