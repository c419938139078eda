package helper

import (
	"github.com/google/uuid"

	"devcamper_backend/internals/constants"
)

// CanModify: admins may modify anything, everyone else only what they own.
func CanModify(subjectID, ownerID uuid.UUID, role constants.Role) bool {
	if role.IsAdmin() {
		return true
	}
	return subjectID != uuid.Nil && subjectID == ownerID
}
