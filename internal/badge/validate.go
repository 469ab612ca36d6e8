package badge

import (
	"encoding/json"
	"io"
	"net/mail"
	"net/url"
	"strings"

	dErrors "badgeforge/pkg/domain-errors"
)

// ParseQuery builds a Request from GET query parameters. Empty parameters
// count as absent.
func ParseQuery(values url.Values) (Request, error) {
	var req Request

	req.Email = strings.TrimSpace(values.Get("email"))
	if name := values.Get("name"); name != "" {
		req.Name = &name
	}
	if photoURL := values.Get("photoURL"); photoURL != "" {
		req.PhotoURL = &photoURL
	}

	if violations := validateEmail(req.Email); violations != nil {
		return Request{}, dErrors.NewValidation(violations)
	}
	return req, nil
}

// rawRequest mirrors the JSON body with undecoded fields so type mismatches
// can be reported per field instead of failing the whole decode.
type rawRequest struct {
	Email    json.RawMessage `json:"email"`
	Name     json.RawMessage `json:"name"`
	PhotoURL json.RawMessage `json:"photoURL"`
}

// ParseJSON builds a Request from a POST body. Optional fields accept
// absent, null, or a string; any other JSON type is a field violation.
func ParseJSON(body io.Reader) (Request, error) {
	var raw rawRequest
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return Request{}, dErrors.NewValidation([]dErrors.Violation{
			{Field: "body", Message: "must be a valid JSON object"},
		})
	}

	var violations []dErrors.Violation
	var req Request

	email, emailTypeOK := decodeOptionalString(raw.Email)
	if !emailTypeOK {
		violations = append(violations, dErrors.Violation{Field: "email", Message: "email must be a string"})
	} else if email != nil {
		req.Email = strings.TrimSpace(*email)
	}

	if name, ok := decodeOptionalString(raw.Name); !ok {
		violations = append(violations, dErrors.Violation{Field: "name", Message: "name must be a string"})
	} else {
		req.Name = name
	}

	if photoURL, ok := decodeOptionalString(raw.PhotoURL); !ok {
		violations = append(violations, dErrors.Violation{Field: "photoURL", Message: "photoURL must be a string"})
	} else {
		req.PhotoURL = photoURL
	}

	if emailTypeOK {
		violations = append(violations, validateEmail(req.Email)...)
	}
	if violations != nil {
		return Request{}, dErrors.NewValidation(violations)
	}
	return req, nil
}

// decodeOptionalString returns (nil, true) for absent or null, the string
// for a JSON string, and ok=false for any other type.
func decodeOptionalString(raw json.RawMessage) (*string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

// validateEmail enforces the address grammar on the already-trimmed value.
// ParseAddress alone accepts display-name forms like "Jane <j@x>"; requiring
// the round-trip to match keeps only bare addresses.
func validateEmail(email string) []dErrors.Violation {
	if email == "" {
		return []dErrors.Violation{{Field: "email", Message: "email is required"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []dErrors.Violation{{Field: "email", Message: "must be a valid email address"}}
	}
	return nil
}
