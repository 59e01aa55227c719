package ufds

import (
	"strings"
	"time"
)

// userAttributes are the attributes requested on user lookups.
var userAttributes = []string{
	"uuid", "login", "uid", "email", "cn", "sn", "givenName", "company",
	"phone", "approved_for_provisioning", "registered_developer",
	"triton_cns_enabled", "pwdAccountLockedTime", "password_expired",
	"memberof", "created", "updated",
}

// adminGroups are the group names whose members hold operator privileges.
var adminGroups = []string{"admins", "operators"}

// UserFlags are the provisioning related booleans on an account.
type UserFlags struct {
	ApprovedForProvisioning bool `json:"approved_for_provisioning"`
	RegisteredDeveloper     bool `json:"registered_developer"`
	TritonCNSEnabled        bool `json:"triton_cns_enabled"`
}

// AccountStatus reflects the operational state of an account.
type AccountStatus struct {
	// Admin is set when the account belongs to an operator group.
	Admin bool `json:"admin"`
	// Locked is set when the directory holds a lockout timestamp.
	Locked bool `json:"locked"`
	// PasswordExpired is set when the password must be rotated.
	PasswordExpired bool `json:"password_expired"`
}

// User is an account entry from the directory.
type User struct {
	DN    DN     `json:"dn"`
	UUID  string `json:"uuid"`
	Login string `json:"login"`
	Email string `json:"email,omitempty"`

	CommonName string `json:"cn,omitempty"`
	Surname    string `json:"sn,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	Company    string `json:"company,omitempty"`
	Phone      string `json:"phone,omitempty"`

	Flags  UserFlags     `json:"flags"`
	Status AccountStatus `json:"status"`

	// Groups holds the names of the groups the account belongs to.
	Groups []string `json:"groups,omitempty"`

	Created *time.Time `json:"created,omitempty"`
	Updated *time.Time `json:"updated,omitempty"`
}

// IsActive reports whether the account can be used: not locked and with a
// current password.
func (u *User) IsActive() bool {
	return !u.Status.Locked && !u.Status.PasswordExpired
}

// IsAdmin reports whether the account holds operator privileges.
func (u *User) IsAdmin() bool { return u.Status.Admin }

// InGroup reports group membership by name, case-insensitively.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if strings.EqualFold(g, name) {
			return true
		}
	}
	return false
}

// parseUserEntry builds a User from a directory entry. The login falls back
// from login to uid when the former is absent.
func parseUserEntry(entry Entry) (User, error) {
	dn, err := ParseDN(entry.DN)
	if err != nil {
		return User{}, err
	}

	login := entry.First("login")
	if login == "" {
		login = entry.First("uid")
	}

	groups := groupsFromMemberOf(entry.Values("memberof"))

	user := User{
		DN:         dn,
		UUID:       entry.First("uuid"),
		Login:      login,
		Email:      entry.First("email"),
		CommonName: entry.First("cn"),
		Surname:    entry.First("sn"),
		GivenName:  entry.First("givenName"),
		Company:    entry.First("company"),
		Phone:      entry.First("phone"),
		Flags: UserFlags{
			ApprovedForProvisioning: entry.Bool("approved_for_provisioning"),
			RegisteredDeveloper:     entry.Bool("registered_developer"),
			TritonCNSEnabled:        entry.Bool("triton_cns_enabled"),
		},
		Status: AccountStatus{
			Admin:           isAdminMember(groups),
			Locked:          entry.First("pwdAccountLockedTime") != "",
			PasswordExpired: entry.Bool("password_expired"),
		},
		Groups:  groups,
		Created: parseDirectoryTime(entry.First("created")),
		Updated: parseDirectoryTime(entry.First("updated")),
	}
	return user, nil
}

// groupsFromMemberOf extracts group names from memberof DNs. Entries whose
// DN does not parse or lacks a cn are skipped.
func groupsFromMemberOf(memberOf []string) []string {
	var groups []string
	for _, raw := range memberOf {
		dn, err := ParseDN(raw)
		if err != nil {
			continue
		}
		if name, ok := dn.Get("cn"); ok {
			groups = append(groups, name)
		}
	}
	return groups
}

func isAdminMember(groups []string) bool {
	for _, g := range groups {
		for _, admin := range adminGroups {
			if strings.EqualFold(g, admin) {
				return true
			}
		}
	}
	return false
}

func parseDirectoryTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}
