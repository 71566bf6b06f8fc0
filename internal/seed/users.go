package seed

import (
	"time"

	"dc-atlas-api-server/internal/auth"
	"dc-atlas-api-server/internal/models"
)

// Users returns the seed accounts with their demo passwords hashed at
// startup, the same way the catalog is validated at startup.
func Users() ([]models.User, error) {
	adminLogin := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	userLogin := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	adminHash, err := auth.HashPassword("admin123")
	if err != nil {
		return nil, err
	}
	userHash, err := auth.HashPassword("user123")
	if err != nil {
		return nil, err
	}

	return []models.User{
		{
			ID:        "1",
			Email:     "admin@datacenter.com",
			Name:      "Admin User",
			Location:  "New York",
			Country:   "USA",
			Role:      models.RoleAdmin,
			Password:  adminHash,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			LastLogin: &adminLogin,
		},
		{
			ID:        "2",
			Email:     "user@example.com",
			Name:      "John Doe",
			Location:  "Kuala Lumpur",
			Country:   "Malaysia",
			Role:      models.RoleUser,
			Password:  userHash,
			CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			LastLogin: &userLogin,
		},
	}, nil
}
