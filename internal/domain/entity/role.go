package entity

// Role represents a user role in the system
type Role struct {
	ID          int      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Permissions []string `gorm:"type:jsonb;serializer:json;not null;default:'[]'" json:"permissions"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDReceptionist = 3
)

// Permission codes
const (
	PermissionAppointments = "citas"
	PermissionAgendaAdmin  = "agenda.admin"
)
