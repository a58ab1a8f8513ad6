package users

// UserRepo is the persistence interface for accounts.
type UserRepo interface {
	Upsert(user *User) error
	Delete(username string) error
	GetByUsername(username string) (*User, error)
	GetByID(id string) (*User, error)
}
