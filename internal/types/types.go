// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	AccountTypeSubscriber = "subscriber"
	AccountTypeUser       = "user"
)

type Tenant struct {
	ID          string    `db:"id"`
	CompanyName string    `db:"company_name"`
	CreatedAt   time.Time `db:"created_at"`
}

type User struct {
	ID                 string    `db:"id"`
	TenantID           string    `db:"tenant_id"`
	FirstName          string    `db:"first_name"`
	LastName           string    `db:"last_name"`
	FullName           string    `db:"full_name"`
	Email              string    `db:"email"`
	AccountType        string    `db:"account_type"`
	MustChangePassword bool      `db:"must_change_password"`
	PasswordHash       string    `db:"password_hash"`
	CreatedAt          time.Time `db:"created_at"`
}

type Membership struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TenantID  string    `db:"tenant_id"`
	IsOwner   bool      `db:"is_owner"`
	CreatedAt time.Time `db:"created_at"`
}

// Workspace is a tenant seen through one user's membership.
type Workspace struct {
	TenantID    string `json:"tenant_id"`
	CompanyName string `json:"company_name"`
	IsOwner     bool   `json:"is_owner"`
}

type Permission struct {
	ID          string    `db:"id"`
	Code        string    `db:"code"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type Role struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// TenantUser is a user row decorated with the names of the roles they hold
// in one tenant.
type TenantUser struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	AccountType        string    `json:"account_type"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	Roles              []string  `json:"roles"`
}

type Employee struct {
	ID         string     `db:"id" json:"id"`
	TenantID   string     `db:"tenant_id" json:"-"`
	UserID     *string    `db:"user_id" json:"user_id,omitempty"`
	FirstName  string     `db:"first_name" json:"first_name"`
	LastName   string     `db:"last_name" json:"last_name"`
	Email      string     `db:"email" json:"email"`
	Position   string     `db:"position" json:"position"`
	Department string     `db:"department" json:"department"`
	HiredOn    *time.Time `db:"hired_on" json:"hired_on,omitempty"`

	// WorkScheduleGroupID ties the employee to a weekly schedule, nil when
	// no group has been assigned.
	WorkScheduleGroupID *string `db:"work_schedule_group_id" json:"work_schedule_group_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Holiday struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"-"`
	Name      string    `db:"name" json:"name"`
	Date      time.Time `db:"date" json:"date"`
	Recurring bool      `db:"recurring" json:"recurring"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type LeaveType struct {
	ID          string    `db:"id" json:"id"`
	TenantID    string    `db:"tenant_id" json:"-"`
	Name        string    `db:"name" json:"name"`
	DefaultDays int       `db:"default_days" json:"default_days"`
	Paid        bool      `db:"paid" json:"paid"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type LeaveEntitlement struct {
	ID          string    `db:"id" json:"id"`
	TenantID    string    `db:"tenant_id" json:"-"`
	EmployeeID  string    `db:"employee_id" json:"employee_id"`
	LeaveTypeID string    `db:"leave_type_id" json:"leave_type_id"`
	Year        int       `db:"year" json:"year"`
	Days        int       `db:"days" json:"days"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CompanySettings struct {
	TenantID     string    `db:"tenant_id" json:"-"`
	CompanyName  string    `db:"company_name" json:"company_name"`
	Address      string    `db:"address" json:"address"`
	Timezone     string    `db:"timezone" json:"timezone"`
	WeekStartsOn string    `db:"week_starts_on" json:"week_starts_on"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type DropdownOption struct {
	ID        string `db:"id" json:"id"`
	TenantID  string `db:"tenant_id" json:"-"`
	Category  string `db:"category" json:"category"`
	Value     string `db:"value" json:"value"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

type WorkScheduleGroup struct {
	ID          string    `db:"id" json:"id"`
	TenantID    string    `db:"tenant_id" json:"-"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// WorkScheduleDay is one weekday of a group's schedule. DayOfWeek is 0-6
// starting at Monday, DayType is "full", "half" or "off".
type WorkScheduleDay struct {
	DayOfWeek int    `db:"day_of_week" json:"day_of_week"`
	DayType   string `db:"day_type" json:"day_type"`
}

// EmployeeIDFormat controls how employee codes are generated in a tenant,
// e.g. EMP00042.
type EmployeeIDFormat struct {
	TenantID     string    `db:"tenant_id" json:"-"`
	IDPrefix     string    `db:"id_prefix" json:"id_prefix"`
	ZeroPadding  int       `db:"zero_padding" json:"zero_padding"`
	NextSequence int       `db:"next_sequence" json:"next_sequence"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// LeaveDefault is the default allowance for a leave type at a given service
// year, applied to employees without an explicit entitlement.
type LeaveDefault struct {
	ID          string  `db:"id" json:"id"`
	TenantID    string  `db:"tenant_id" json:"-"`
	LeaveTypeID string  `db:"leave_type_id" json:"leave_type_id"`
	ServiceYear int     `db:"service_year" json:"service_year"`
	Days        float64 `db:"days" json:"days"`
}
