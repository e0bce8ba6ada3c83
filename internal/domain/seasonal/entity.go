package seasonal

import "time"

type InfoType string

const (
	TypeSakura InfoType = "sakura"
	TypeAzalea InfoType = "azalea"
	TypeOther  InfoType = "other"
)

var InfoTypeValues = []string{
	string(TypeSakura),
	string(TypeAzalea),
	string(TypeOther),
}

// Area is one named viewing spot with an optional best-viewing date range.
type Area struct {
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	ViewingStart *time.Time `json:"viewing_start,omitempty"`
	ViewingEnd   *time.Time `json:"viewing_end,omitempty"`
}

// InViewingPeriod reports whether day falls inside the area's viewing range,
// bounds inclusive. Areas without a range are never in period.
func (a Area) InViewingPeriod(day time.Time) bool {
	if a.ViewingStart == nil || a.ViewingEnd == nil {
		return false
	}
	return !day.Before(*a.ViewingStart) && !day.After(*a.ViewingEnd)
}

type SeasonalInfo struct {
	ID        string
	Type      InfoType
	Name      string
	Progress  float64
	Areas     []Area
	UpdatedAt time.Time
	CreatedAt time.Time
}
