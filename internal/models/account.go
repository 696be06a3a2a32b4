// Package models defines the account and session types of the PopX
// identity vault.
package models

// Account is one registered identity as stored in the accounts document.
// The Secret field holds the plaintext credential; this vault is a local
// stand-in for a real authentication service and deliberately performs
// exact-match verification instead of one-way hashing.
type Account struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	CompanyName  string `json:"companyName,omitempty"`
	IsAgency     bool   `json:"isAgency"`
	ProfileImage string `json:"profileImage,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Secret       string `json:"password"`
}

// AccountInput carries the data required to register a new account.
// The validate tags mirror the registration form: name, phone, email and
// password are mandatory, the password must be at least 6 characters.
type AccountInput struct {
	FullName     string `validate:"required"`
	Email        string `validate:"required,email"`
	PhoneNumber  string `validate:"required"`
	CompanyName  string
	IsAgency     bool
	ProfileImage string
	Bio          string
	Secret       string `validate:"required,min=6"`
}

// Account builds a new Account from the input. The caller assigns the id.
func (in AccountInput) Account(id string) *Account {
	return &Account{
		ID:           id,
		FullName:     in.FullName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		CompanyName:  in.CompanyName,
		IsAgency:     in.IsAgency,
		ProfileImage: in.ProfileImage,
		Bio:          in.Bio,
		Secret:       in.Secret,
	}
}

// Session is the public projection of an Account: the same fields minus
// the credential secret. At most one session exists at a time.
type Session struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	CompanyName  string `json:"companyName,omitempty"`
	IsAgency     bool   `json:"isAgency"`
	ProfileImage string `json:"profileImage,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

// Session projects the account to its public view, dropping the secret.
// All session records must be derived through this function so the session
// document can never drift from the account it mirrors.
func (a *Account) Session() *Session {
	return &Session{
		ID:           a.ID,
		FullName:     a.FullName,
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		CompanyName:  a.CompanyName,
		IsAgency:     a.IsAgency,
		ProfileImage: a.ProfileImage,
		Bio:          a.Bio,
	}
}
