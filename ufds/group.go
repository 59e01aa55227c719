package ufds

// groupAttributes are the attributes requested on group searches.
var groupAttributes = []string{"cn", "description", "member", "uniqueMember"}

const groupFilter = "(|(objectClass=groupOfNames)(objectClass=groupOfUniqueNames))"

// Group is a directory group and its member DNs.
type Group struct {
	DN          DN     `json:"dn"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Members     []DN   `json:"members,omitempty"`
}

// MemberCount returns the number of members.
func (g *Group) MemberCount() int { return len(g.Members) }

// HasMember reports whether the DN is a member of the group.
func (g *Group) HasMember(dn DN) bool {
	for _, m := range g.Members {
		if m.Equal(dn) {
			return true
		}
	}
	return false
}

// parseGroupEntry builds a Group from a directory entry. Member values that
// fail DN parsing are dropped; the count of dropped values is returned so
// the caller can log it.
func parseGroupEntry(entry Entry) (Group, int, error) {
	dn, err := ParseDN(entry.DN)
	if err != nil {
		return Group{}, 0, err
	}

	name := entry.First("cn")
	if name == "" {
		if cn, ok := dn.Get("cn"); ok {
			name = cn
		}
	}

	raw := entry.Values("member")
	if len(raw) == 0 {
		raw = entry.Values("uniqueMember")
	}

	var members []DN
	dropped := 0
	for _, value := range raw {
		member, err := ParseDN(value)
		if err != nil {
			dropped++
			continue
		}
		members = append(members, member)
	}

	return Group{
		DN:          dn,
		Name:        name,
		Description: entry.First("description"),
		Members:     members,
	}, dropped, nil
}
