package entity

// Role is seeded reference data: 1 = TEAMLEAD, 2 = MEMBER.
type Role struct {
	ID   int
	Name string
}
