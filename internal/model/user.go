package model

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// ValidRole reports whether r is a role the admin API may assign.
func ValidRole(r Role) bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User is an account record. The password column holds a bcrypt hash and is
// never serialized.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
