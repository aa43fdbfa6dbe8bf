package models

import "time"

// Offer is a job offer as returned by the offers endpoints.
type Offer struct {
	ID                 int64     `json:"id"`
	RecruiterID        int64     `json:"recruiterId"`
	RecruiterName      string    `json:"recruiterName,omitempty"`
	CompanyName        string    `json:"companyName,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Requirements       string    `json:"requirements,omitempty"`
	Location           string    `json:"location,omitempty"`
	City               string    `json:"city,omitempty"`
	Country            string    `json:"country,omitempty"`
	JobType            string    `json:"jobType,omitempty"`
	Status             string    `json:"status,omitempty"`
	SalaryMin          int       `json:"salaryMin,omitempty"`
	SalaryMax          int       `json:"salaryMax,omitempty"`
	SalaryCurrency     string    `json:"salaryCurrency,omitempty"`
	ExperienceRequired int       `json:"experienceRequired,omitempty"`
	SkillsRequired     string    `json:"skillsRequired,omitempty"`
	RemoteAllowed      bool      `json:"remoteAllowed,omitempty"`
	ViewsCount         int       `json:"viewsCount,omitempty"`
	ApplicationsCount  int       `json:"applicationsCount,omitempty"`
	IsFeatured         bool      `json:"isFeatured,omitempty"`
	IsUrgent           bool      `json:"isUrgent,omitempty"`
	CreatedAt          time.Time `json:"createdAt,omitzero"`
	UpdatedAt          time.Time `json:"updatedAt,omitzero"`
}

// SkillType is an entry in the skill-type taxonomy.
type SkillType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Active      bool   `json:"active"`
}

// RoleDefinition is a configurable role with its permission set, distinct
// from the closed Role enum attached to users.
type RoleDefinition struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName,omitempty"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Active      bool     `json:"active"`
	UserCount   int      `json:"userCount,omitempty"`
}

// Notification is a platform notification row.
type Notification struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	ReferenceID   int64     `json:"referenceId,omitempty"`
	ReferenceType string    `json:"referenceType,omitempty"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// Paginated is the page envelope the screens render. The admin user
// endpoints return plain arrays; PaginateSlice produces the same envelope by
// slicing client-side, mirroring what the back office always did for them.
type Paginated[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Size          int  `json:"size"`
	Number        int  `json:"number"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
	Empty         bool `json:"empty"`
}

// PaginateSlice builds a page envelope from a full result set.
func PaginateSlice[T any](items []T, page, size int) Paginated[T] {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	content := items[start:end]

	return Paginated[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
		Empty:         len(content) == 0,
	}
}
