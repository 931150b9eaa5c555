package models

import "time"

// Comment is a row of a per-kind comment table. EntityID is read from the
// kind's foreign key column (point_id for points) under a common alias.
type Comment struct {
	ID        int64      `db:"id"`
	Kind      string     `db:"kind"`
	EntityID  int64      `db:"entity_id"`
	UserID    int64      `db:"user_id"`
	UserEmail string     `db:"user_email"`
	Body      string     `db:"body"`
	CreatedAt time.Time  `db:"created_at"`
	Edited    bool       `db:"edited"`
	UpdatedAt *time.Time `db:"updated_at"`
}
