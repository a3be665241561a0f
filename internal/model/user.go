package model

type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleTeacher UserRole = "TEACHER"
)

// User is a logged-in principal. It lives only for the client session and
// is never persisted; AccessCode is carried transiently by students and
// verified at submission time.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       UserRole `json:"role"`
	AccessCode string   `json:"access_code,omitempty"`
}
