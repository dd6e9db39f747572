package entity

import (
	"time"

	"gorm.io/gorm"
)

// Permission levels, lower number = more privilege.
const (
	PermissionOwner   = 1
	PermissionManager = 2
	PermissionEditor  = 3
	PermissionViewer  = 4
)

// RoleLimits caps how many admins may exist per permission level.
// The owner level has no entry: owner accounts are only ever seeded,
// never created through the admin screen.
var RoleLimits = map[int]int64{
	PermissionManager: 3,
	PermissionEditor:  3,
	PermissionViewer:  3,
}

type AdminUser struct {
	gorm.Model
	Name            string     `gorm:"not null" json:"name"`
	Username        string     `gorm:"uniqueIndex;not null" json:"username"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordDigest  string     `json:"-"`
	PermissionLevel int        `gorm:"not null" json:"permissionLevel"`
	LastLoggedIn    *time.Time `json:"lastLoggedIn,omitempty"`
}

func (AdminUser) TableName() string { return "admins" }

// Value receivers so templates can call these on list elements too.
func (a AdminUser) IsOwner() bool {
	return a.PermissionLevel == PermissionOwner
}

// RoleName is what the admin list shows for a level.
func (a AdminUser) RoleName() string {
	switch a.PermissionLevel {
	case PermissionOwner:
		return "Owner"
	case PermissionManager:
		return "Manager"
	case PermissionEditor:
		return "Editor"
	case PermissionViewer:
		return "Viewer"
	default:
		return "Unknown"
	}
}

func ValidPermissionLevel(level int) bool {
	return level >= PermissionOwner && level <= PermissionViewer
}
