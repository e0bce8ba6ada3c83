package store

import (
	"time"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
)

// DayCategory buckets staffing requirements by kind of day.
type DayCategory string

const (
	DayWeekday  DayCategory = "weekday"
	DaySaturday DayCategory = "saturday"
	DaySunday   DayCategory = "sunday"
	DayHoliday  DayCategory = "holiday"
)

var DayCategoryValues = []string{
	string(DayWeekday),
	string(DaySaturday),
	string(DaySunday),
	string(DayHoliday),
}

// SkillRequirement is the required headcount per skill level per skill type
// for one day category. A store holds at most one entry per day category.
type SkillRequirement struct {
	DayCategory DayCategory                                      `json:"day_category"`
	Required    map[employee.SkillType]map[employee.SkillLevel]int `json:"required"`
}

type Store struct {
	ID           string
	Name         string
	Address      string
	Phone        string
	Requirements []SkillRequirement
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequirementFor returns the skill requirement for a day category, if set.
func (s *Store) RequirementFor(cat DayCategory) (SkillRequirement, bool) {
	for _, req := range s.Requirements {
		if req.DayCategory == cat {
			return req, true
		}
	}
	return SkillRequirement{}, false
}
