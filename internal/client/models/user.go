// Package models holds the client-side view of the platform's REST
// resources. The structures mirror what the backend returns; the console
// never owns relational modelling for any of them.
package models

import "time"

// Role is the closed set of account roles. It drives which routes and menu
// entries are reachable.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleRecruiter Role = "RECRUITER"
	RoleJobSeeker Role = "JOB_SEEKER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRecruiter, RoleJobSeeker:
		return true
	}
	return false
}

// VerificationStatus is the account verification state as reported by the
// backend.
type VerificationStatus string

const (
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationPending  VerificationStatus = "PENDING"
	VerificationRejected VerificationStatus = "REJECTED"
)

// User is the profile record attached to a session. Only id, email, fullName
// and role are guaranteed; the remaining fields are role-specific or
// bookkeeping and may be absent in backend payloads.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Role        Role   `json:"role"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	IsFirstLogin       bool               `json:"isFirstLogin,omitempty"`
	Active             bool               `json:"active"`
	VerificationStatus VerificationStatus `json:"verificationStatus,omitempty"`
	ProfilePictureURL  string             `json:"profilePictureUrl,omitempty"`
	CreatedAt          time.Time          `json:"createdAt,omitzero"`
	UpdatedAt          time.Time          `json:"updatedAt,omitzero"`

	// Recruiter attributes.
	CompanyName        string `json:"companyName,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanySize        string `json:"companySize,omitempty"`
	Industry           string `json:"industry,omitempty"`
	CompanyCity        string `json:"companyCity,omitempty"`
	CompanyCountry     string `json:"companyCountry,omitempty"`
	Position           string `json:"position,omitempty"`
	Department         string `json:"department,omitempty"`

	// Job-seeker attributes.
	CurrentTitle      string `json:"currentTitle,omitempty"`
	City              string `json:"city,omitempty"`
	Skills            string `json:"skills,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
