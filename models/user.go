package models

// User is an account that can list devices and export telemetry. Created
// through registration and never deleted by the system.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"column:password_hash;not null"` // bcrypt hash
}

func (User) TableName() string { return "usuarios" }
