package models

// Project is one Atlas project (API "group") within the organization.
type Project struct {
	ID   string
	Name string
}
