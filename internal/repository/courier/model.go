package courier

import "time"

type CourierDB struct {
	ID        int64
	Name      string
	Email     string
	AvatarID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
