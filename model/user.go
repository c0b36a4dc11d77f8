package model

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents the single active session's identity. Passwords are never
// stored on the record; credentials live in the fixed demo table.
type User struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Role                string   `json:"role"` // "user" or "admin"
	ProfilePicture      string   `json:"profilePicture,omitempty"`
	AcademicBackground  string   `json:"academicBackground,omitempty"`
	Percentage          float64  `json:"percentage,omitempty"`
	Stream              string   `json:"stream,omitempty"`
	Age                 int      `json:"age,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	ShortlistedColleges []string `json:"shortlistedColleges"`
}

// SignupProfile is the caller-supplied part of a new user record.
type SignupProfile struct {
	Name               string
	Email              string
	AcademicBackground string
	Percentage         float64
	Stream             string
	Age                int
	Gender             string
}

// Clone returns a copy of u that shares no slices with the original.
func (u User) Clone() User {
	out := u
	out.ShortlistedColleges = append([]string(nil), u.ShortlistedColleges...)
	return out
}
