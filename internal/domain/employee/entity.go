package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

// SkillType buckets what an employee can do and what a store needs.
type SkillType string

const (
	SkillKitchen SkillType = "kitchen"
	SkillHall    SkillType = "hall"
	SkillSales   SkillType = "sales"
	SkillOverall SkillType = "overall"
)

var SkillTypeValues = []string{
	string(SkillKitchen),
	string(SkillHall),
	string(SkillSales),
	string(SkillOverall),
}

// SkillLevel is ordinal: A is most skilled, C least.
type SkillLevel string

const (
	SkillLevelA SkillLevel = "A"
	SkillLevelB SkillLevel = "B"
	SkillLevelC SkillLevel = "C"
)

var SkillLevelValues = []string{
	string(SkillLevelA),
	string(SkillLevelB),
	string(SkillLevelC),
}

type Employee struct {
	ID              string
	Name            string
	Email           string
	Role            Role
	EmploymentType  string
	Skills          map[SkillType]SkillLevel
	DesiredWorkDays int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
