package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/fusionware/storefront/internal/domain"
)

// ErrInvalidCredentials is the single failure for any unmatched email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

type account struct {
	user domain.User
	hash string
}

// CredentialTable is the fixed set of login accounts.
type CredentialTable struct {
	accounts map[string]account
	// decoy is compared for unknown emails so both failure paths cost one bcrypt run.
	decoy string
}

type seedAccount struct {
	user     domain.User
	password string
}

var demoAccounts = []seedAccount{
	{
		user:     domain.User{ID: "1", Name: "Admin User", Email: "admin@fusionware.com", Role: domain.RoleAdmin},
		password: "admin123",
	},
	{
		user:     domain.User{ID: "2", Name: "John Doe", Email: "user@example.com", Role: domain.RoleCustomer},
		password: "user123",
	},
}

// NewCredentialTable hashes the demo accounts' passwords with the given
// bcrypt cost, clamped to the range bcrypt accepts.
func NewCredentialTable(cost int) (*CredentialTable, error) {
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)
	table := &CredentialTable{accounts: make(map[string]account, len(demoAccounts))}
	for _, a := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), cost)
		if err != nil {
			return nil, err
		}
		table.accounts[a.user.Email] = account{user: a.user, hash: string(hash)}
	}
	decoy, err := bcrypt.GenerateFromPassword([]byte("decoy"), cost)
	if err != nil {
		return nil, err
	}
	table.decoy = string(decoy)
	return table, nil
}

// Verify returns the account matching email and password exactly.
func (t *CredentialTable) Verify(email, password string) (domain.User, error) {
	a, ok := t.accounts[email]
	if !ok {
		_ = bcrypt.CompareHashAndPassword([]byte(t.decoy), []byte(password))
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.hash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return a.user, nil
}

// Lookup returns the account for a user id.
func (t *CredentialTable) Lookup(id string) (domain.User, bool) {
	for _, a := range t.accounts {
		if a.user.ID == id {
			return a.user, true
		}
	}
	return domain.User{}, false
}
