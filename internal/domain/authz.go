package domain

import "strings"

// OwnerOrRoles is the single authorization predicate for
// resource-level checks: the requester may act when they own the
// resource or hold one of the elevated roles.
func OwnerOrRoles(ownerID, requesterID int64, requesterRole string, elevated ...string) bool {
	if ownerID != 0 && ownerID == requesterID {
		return true
	}
	role := strings.ToLower(strings.TrimSpace(requesterRole))
	for _, e := range elevated {
		if role == strings.ToLower(strings.TrimSpace(e)) {
			return true
		}
	}
	return false
}
