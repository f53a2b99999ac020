package database

import (
	"context"
	"log"

	"github.com/fitzone/gym-booking/internal/models"
	"github.com/fitzone/gym-booking/internal/repository"
	"gorm.io/datatypes"
)

// SeedMembershipPlans inserts the default plan catalog on first startup and
// does nothing when plans already exist.
func SeedMembershipPlans(ctx context.Context, planRepo repository.PlanRepository) error {
	count, err := planRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("membership plans already exist, skipping seed")
		return nil
	}

	plans := []models.MembershipPlan{
		{
			Name:         "Weekly Plan",
			DurationDays: 7,
			Price:        30,
			Description:  "Perfect for short-term fitness goals",
			Features: datatypes.NewJSONSlice([]string{
				"Unlimited class bookings",
				"Basic equipment access",
				"Free locker usage",
			}),
			IsActive: true,
		},
		{
			Name:         "Monthly Plan",
			DurationDays: 30,
			Price:        100,
			Description:  "Our most popular membership plan",
			Features: datatypes.NewJSONSlice([]string{
				"Unlimited class bookings",
				"Full equipment access",
				"Free locker usage",
				"Free towel service",
				"Exclusive member events",
			}),
			IsActive: true,
		},
		{
			Name:         "Annual Plan",
			DurationDays: 365,
			Price:        1000,
			Description:  "Best value for long-term commitment",
			Features: datatypes.NewJSONSlice([]string{
				"Unlimited class bookings",
				"Full equipment access",
				"Free locker usage",
				"Free towel service",
				"Exclusive member events",
				"Personal trainer sessions (2 per month)",
				"Free fitness assessment (quarterly)",
			}),
			IsActive: true,
		},
	}

	if err := planRepo.CreateBatch(ctx, plans); err != nil {
		return err
	}
	log.Println("membership plans seeded")
	return nil
}
