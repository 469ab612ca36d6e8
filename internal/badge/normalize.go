package badge

import "strings"

// DefaultName substitutes for an absent or blank name.
const DefaultName = "Guest"

// filenameSuffix is appended to the derived download filename base.
const filenameSuffix = "_badge.png"

// Normalize derives the Identity for a validated request. Deterministic and
// pure: identical requests always yield identical identities.
func Normalize(req Request) Identity {
	name := DefaultName
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name = strings.TrimSpace(*req.Name)
	}

	id := Identity{
		Name:  name,
		Email: req.Email,
	}
	if req.PhotoURL != nil && *req.PhotoURL != "" {
		id.PhotoURL = req.PhotoURL
	}
	return id
}

// Filename derives the download filename: the name lowercased, whitespace
// runs collapsed to single underscores, plus a fixed suffix. A defaulted
// name yields "guest_badge.png".
func (id Identity) Filename() string {
	base := strings.Join(strings.Fields(strings.ToLower(id.Name)), "_")
	if base == "" {
		base = strings.ToLower(DefaultName)
	}
	return base + filenameSuffix
}
