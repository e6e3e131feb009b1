package domain

import "time"

type Place struct {
	ID          int64
	Name        string
	Type        string
	Address     string
	WifiQuality string
	WorkHours   string
	Description string
	PhotoPath   string
	Contact     string
	Rating      float64 // mean of review stars, 0.0 when unreviewed
}

type Review struct {
	ID        int64
	PlaceID   int64
	Author    string
	Stars     int // 1..5
	Comment   string
	CreatedAt time.Time
}

// AnonymousAuthor replaces an empty review author before persistence.
const AnonymousAuthor = "Аноним"

func ValidStars(s int) bool { return s >= 1 && s <= 5 }
