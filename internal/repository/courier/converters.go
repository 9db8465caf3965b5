package courier

import (
	"fastfeet/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		AvatarID:  c.AvatarID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
