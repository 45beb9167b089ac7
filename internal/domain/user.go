package domain

// Role separates storefront customers from back-office operators.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is the signed-in account. It is stored verbatim in the session store,
// hence the JSON tags.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user may use the back office.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile holds the editable account details shown on the profile page.
type Profile struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
}
