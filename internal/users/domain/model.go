package domain

// User is a registered person as returned by the business API.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Prefecture string `json:"prefecture"`
}

// Patch is a partial update; nil fields are left untouched by the API.
type Patch struct {
	Email      *string `json:"email,omitempty"`
	Name       *string `json:"name,omitempty"`
	Prefecture *string `json:"prefecture,omitempty"`
}

// DiffPatch contains only the fields that differ between before and after.
func DiffPatch(before, after User) Patch {
	var p Patch
	if before.Email != after.Email {
		p.Email = &after.Email
	}
	if before.Name != after.Name {
		p.Name = &after.Name
	}
	if before.Prefecture != after.Prefecture {
		p.Prefecture = &after.Prefecture
	}
	return p
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Email == nil && p.Name == nil && p.Prefecture == nil
}
