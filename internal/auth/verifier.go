package auth

import "github.com/velimirb/portfolio-backend/pkg"

type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Verifier checks submitted credentials against the configured admin
// identity. A wrong username and a wrong password are indistinguishable to
// the caller.
type Verifier struct {
	admin Admin
}

func NewVerifier(admin Admin) *Verifier {
	return &Verifier{
		admin: admin,
	}
}

func (v *Verifier) Verify(credentials Credentials) bool {
	if credentials.Username != v.admin.Username {
		return false
	}
	// bcrypt comparison, constant time on the hash side
	return pkg.CheckPasswordHash(credentials.Password, v.admin.PasswordHash)
}
