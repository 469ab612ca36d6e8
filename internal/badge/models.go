// Package badge holds the badge request model, its validation, and the
// normalization rules applied before rendering.
package badge

// Request is one validated badge request. Optional fields are pointers so
// "absent" and "empty string" stay distinguishable through normalization.
type Request struct {
	Email    string
	Name     *string
	PhotoURL *string
}

// Identity is the normalized form fed to the artifact generator and the
// email dispatcher. PhotoURL stays nil when the request carried none; it is
// never the empty string.
type Identity struct {
	Name     string
	Email    string
	PhotoURL *string
}

// Artifact is one rendered badge plus the filename a download should use.
type Artifact struct {
	Bytes    []byte
	Filename string
}
