package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ParsedResume is the structured data an upstream parser extracted from a résumé.
type ParsedResume struct {
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience" validate:"dive"`
	Education  []EducationEntry  `json:"education" validate:"dive"`
	Contact    *Contact          `json:"contact,omitempty"`
}

// ExperienceEntry is one work-history item. Duration is free text such as
// "2 years 6 months".
type ExperienceEntry struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Duration    string   `json:"duration"`
	Description []string `json:"description,omitempty"`
}

// EducationEntry is one education item
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Contact is the résumé contact block
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Validate checks the parsed résumé for malformed contact data.
func (p *ParsedResume) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Resume is a stored résumé record. Only one résumé per user is active.
type Resume struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	FileName   string        `json:"file_name"`
	IsActive   bool          `json:"is_active"`
	ParsedData *ParsedResume `json:"parsed_data,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// UserProfile is the scoring-ready view of a user, derived from the active
// parsed résumé on every request.
type UserProfile struct {
	Skills              []string          `json:"skills"`
	Experience          []ExperienceEntry `json:"experience"`
	Education           []EducationEntry  `json:"education"`
	Location            string            `json:"location,omitempty"`
	PreferredLevel      ExperienceLevel   `json:"preferred_level,omitempty"`
	PreferredIndustries []string          `json:"preferred_industries"`
}
