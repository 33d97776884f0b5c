package auth

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// Roles. USER may manage additive preferences; ADMIN may additionally
// trigger syncs and upload provider photos.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
