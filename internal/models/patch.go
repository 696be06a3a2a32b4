package models

// Patch is a partial account update. A nil field leaves the current value
// untouched; a non-nil field replaces it, including replacement with the
// empty string. The id and the credential secret cannot be patched.
type Patch struct {
	FullName     *string `json:"fullName,omitempty"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	CompanyName  *string `json:"companyName,omitempty"`
	IsAgency     *bool   `json:"isAgency,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// IsZero reports whether the patch carries no fields at all.
func (p Patch) IsZero() bool {
	return p.FullName == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.CompanyName == nil && p.IsAgency == nil && p.ProfileImage == nil &&
		p.Bio == nil
}

// Apply merges the patch into the account field by field. Applying the
// same patch twice yields the same account as applying it once.
func (a *Account) Apply(p Patch) {
	if p.FullName != nil {
		a.FullName = *p.FullName
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		a.PhoneNumber = *p.PhoneNumber
	}
	if p.CompanyName != nil {
		a.CompanyName = *p.CompanyName
	}
	if p.IsAgency != nil {
		a.IsAgency = *p.IsAgency
	}
	if p.ProfileImage != nil {
		a.ProfileImage = *p.ProfileImage
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}
}

// String returns a pointer to s, a convenience for building patches.
func String(s string) *string { return &s }

// Bool returns a pointer to b, a convenience for building patches.
func Bool(b bool) *bool { return &b }
