package models

// DefaultAvatar is assigned to every user; avatars are not user-configurable.
const DefaultAvatar = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150"

// User is the signed-in identity persisted under the currentUser key.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Credential is a roster entry. Password is kept as entered.
type Credential struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User projects the credential onto its public user record.
func (c Credential) User() User {
	return User{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Avatar: DefaultAvatar,
	}
}
