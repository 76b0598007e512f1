package ds

const (
	RoleViewer    = "viewer"
	RoleModerator = "moderator"
)

// @Schema(description="Catalog operator account")
type User struct {
	UserID   int    `gorm:"primaryKey;column:user_id"`
	FIO      string `gorm:"column:fio"`
	Login    string `gorm:"column:login;unique;not null"`
	Password string `gorm:"column:password;not null"`
	Contacts string `gorm:"column:contacts"`
	Role     string `gorm:"column:role;not null;default:viewer"` // "viewer" | "moderator"
}

func (u User) IsModerator() bool {
	return u.Role == RoleModerator
}

func (User) TableName() string {
	return "users"
}
