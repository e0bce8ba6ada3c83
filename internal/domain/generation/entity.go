package generation

import (
	"time"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/event"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/preference"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/store"
)

// RelationshipConstraint is an unordered pair of employees who must never
// share a shift slot.
type RelationshipConstraint struct {
	ID        string `json:"id,omitempty"`
	EmployeeA string `json:"employee_a"`
	EmployeeB string `json:"employee_b"`
	Reason    string `json:"reason,omitempty"`
}

// Matches reports whether the constraint binds the given pair, in either order.
func (c RelationshipConstraint) Matches(a, b string) bool {
	return (c.EmployeeA == a && c.EmployeeB == b) || (c.EmployeeA == b && c.EmployeeB == a)
}

// Options are the flags handed to the external generator.
type Options struct {
	PrioritizePreferences     bool `json:"prioritize_preferences"`
	DistributeEvenly          bool `json:"distribute_evenly"`
	ConsiderSkillRequirements bool `json:"consider_skill_requirements"`
}

// Package is the full, self-contained constraint input for one generation
// run over [StartDate, EndDate].
type Package struct {
	StartDate   time.Time                    `json:"start_date"`
	EndDate     time.Time                    `json:"end_date"`
	Employees   []employee.Employee          `json:"employees"`
	Stores      []store.Store                `json:"stores"`
	Preferences []preference.ShiftPreference `json:"preferences"`
	Events      []event.Event                `json:"events"`
	Constraints []RelationshipConstraint     `json:"constraints"`
	Options     Options                      `json:"options"`
}

// ProposedAssignment is one slot in the generator's candidate schedule.
// Date is "YYYY-MM-DD"; times are "HH:MM" wall clock.
type ProposedAssignment struct {
	EmployeeID string `json:"employee_id"`
	StoreID    string `json:"store_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}
