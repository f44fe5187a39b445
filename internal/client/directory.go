package client

import "professor-booking-server/internal/dto"

// Departments offered as directory filters.
var Departments = []string{"Math", "Engineering", "Business", "Science", "English", "Art"}

// FilterByDepartment returns the professors whose department equals
// department exactly, in their original order. An empty department returns
// the full list.
func FilterByDepartment(professors []dto.Professor, department string) []dto.Professor {
	if department == "" {
		return professors
	}

	out := make([]dto.Professor, 0, len(professors))
	for _, p := range professors {
		if p.Department == department {
			out = append(out, p)
		}
	}
	return out
}
