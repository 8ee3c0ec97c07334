package domain

import "time"

type Company struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	RegistrationNo string    `json:"registration_no"`
	CreatedAt      time.Time `json:"created_at"`
}

type CompanyFilters struct {
	Search string
}
