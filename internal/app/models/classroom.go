package models

// Classroom represents a bookable room resource.
type Classroom struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Building    *string `json:"building,omitempty" db:"building"` // Nullable
	Capacity    int     `json:"capacity" db:"capacity"`
	IsAvailable bool    `json:"isAvailable" db:"is_available"`
}
