package users

// Role classifies what a user signed up as. Roles are descriptive only;
// nothing in the system gates behavior on them.
type Role string

const (
	RoleVisitor        Role = "Visitor"
	RoleContentCreator Role = "Content Creator"
	RoleTourGuide      Role = "Tour Guide"
	RoleAdmin          Role = "Admin"
)

// User is a registered account. Email is the unique key within the user
// list; matching is case-sensitive with no normalization.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
}

// Profile is the sanitized view of a User, safe to hand to clients and to
// persist as the session. It never carries credential material.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Profile returns the sanitized view of the user
func (u User) Profile() Profile {
	return Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
