package entity

import (
	"time"

	"github.com/loterias-lab/backend/pkg/enum"
)

type GlobalRole string

var (
	RoleSuperAdmin = enum.New(GlobalRole("SUPER_ADMIN"))
	RoleAdmin      = enum.New(GlobalRole("ADMIN"))
	RoleUser       = enum.New(GlobalRole("USER"))
)

var GlobalAdminRoles = []GlobalRole{RoleSuperAdmin, RoleAdmin}

type Plan string

var (
	PlanFree = enum.New(Plan("free"))
	PlanPro  = enum.New(Plan("pro"))
)

type User struct {
	Base
	Name          string
	Email         string `gorm:"uniqueIndex;size:255"`
	Password      string
	Role          GlobalRole `gorm:"default:USER"`
	Plan          Plan       `gorm:"index;default:free"`
	PlanExpiresAt *time.Time
}

// ProExpired reports whether the user is on the pro plan but its expiry has
// passed at now.
func (u *User) ProExpired(now time.Time) bool {
	return u.Plan == PlanPro && u.PlanExpiresAt != nil && !u.PlanExpiresAt.After(now)
}

// ActivePro reports whether the user can use pro features at now.
func (u *User) ActivePro(now time.Time) bool {
	return u.Plan == PlanPro && !u.ProExpired(now)
}

type PlanChangeReason string

var (
	PlanChangeUpgrade   = enum.New(PlanChangeReason("upgrade"))
	PlanChangeDowngrade = enum.New(PlanChangeReason("downgrade"))
	PlanChangeAdmin     = enum.New(PlanChangeReason("admin"))
	PlanChangeExpired   = enum.New(PlanChangeReason("expired"))
)

type PlanHistory struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	PreviousPlan Plan
	NewPlan      Plan
	Reason       PlanChangeReason
	ChangedBy    string
	ExpiresAt    *time.Time
}
