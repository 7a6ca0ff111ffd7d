package teams

import "errors"

var (
	// ErrTeamNotFound is returned when the requested team does not exist.
	ErrTeamNotFound = errors.New("teams: team not found")

	// ErrMemberNotFound is returned when the user is not a member of the
	// team.
	ErrMemberNotFound = errors.New("teams: member not found")

	// ErrAlreadyMember is returned when adding a user who is already a
	// member of the team.
	ErrAlreadyMember = errors.New("teams: user already a member")
)
