// Package contact implements the contact-form flow, independent of the
// badge pipeline.
package contact

import (
	"encoding/json"
	"io"
	"strings"

	dErrors "badgeforge/pkg/domain-errors"
)

// Submission is one contact-form submission. All four fields are required.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ParseSubmission decodes and validates a submission body. Every missing or
// blank field yields its own violation; partial submissions never pass.
func ParseSubmission(body io.Reader) (Submission, error) {
	var sub Submission
	if err := json.NewDecoder(body).Decode(&sub); err != nil {
		return Submission{}, dErrors.NewValidation([]dErrors.Violation{
			{Field: "body", Message: "must be a valid JSON object"},
		})
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)

	var violations []dErrors.Violation
	for _, f := range []struct {
		field string
		value string
	}{
		{"name", sub.Name},
		{"email", sub.Email},
		{"subject", sub.Subject},
		{"message", sub.Message},
	} {
		if f.value == "" {
			violations = append(violations, dErrors.Violation{Field: f.field, Message: f.field + " is required"})
		}
	}
	if violations != nil {
		return Submission{}, dErrors.NewValidation(violations)
	}
	return sub, nil
}
