package dto

import (
	"time"

	"github.com/ireporter/api/internal/domain/entity"
)

// Envelope is the uniform success body: status, an optional session token and
// an optional data payload.
type Envelope struct {
	Status  string      `json:"status"`
	Token   string      `json:"token,omitempty"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorEnvelope is the uniform failure body. Status is "fail" for client
// errors and "error" for server-side ones.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UserResponse is the DTO for a user. Credential and soft-delete fields never
// leave the API.
type UserResponse struct {
	ID           string `json:"id"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Othernames   string `json:"othernames,omitempty"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Photo        string `json:"photo"`
	SignupMethod string `json:"signupMethod"`
	Role         string `json:"role"`
	IsAdmin      bool   `json:"isAdmin"`
	CreatedAt    string `json:"createdAt"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Firstname:    user.Firstname,
		Lastname:     user.Lastname,
		Othernames:   user.Othernames,
		PhoneNumber:  user.PhoneNumber,
		Email:        user.Email,
		Username:     user.Username,
		Photo:        user.Photo,
		SignupMethod: string(user.SignupMethod),
		Role:         string(user.Role),
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// ReportResponse is the DTO for a report.
type ReportResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Type        string           `json:"type"`
	Images      []string         `json:"images"`
	Videos      []string         `json:"videos"`
	Location    *entity.GeoPoint `json:"location,omitempty"`
	CreatedBy   string           `json:"createdBy"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

// ToReportResponse converts an entity.Report to a ReportResponse DTO.
func ToReportResponse(report *entity.Report) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		Title:       report.Title,
		Slug:        report.Slug,
		Description: report.Description,
		Status:      string(report.Status),
		Type:        string(report.Type),
		Images:      report.Images,
		Videos:      report.Videos,
		Location:    report.Location,
		CreatedBy:   report.CreatedBy,
		CreatedAt:   report.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   report.UpdatedAt.Format(time.RFC3339),
	}
}

// ToReportResponses converts a slice of reports.
func ToReportResponses(reports []*entity.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToReportResponse(r))
	}
	return out
}
