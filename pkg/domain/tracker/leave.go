package tracker

// Leave is a leave request. Only approved leaves reduce capacity.
type Leave struct {
	UserEmail string       `json:"user_email" yaml:"user_email"`
	StartDate FlexibleDate `json:"start_date" yaml:"start_date"`
	EndDate   FlexibleDate `json:"end_date" yaml:"end_date"`
	Status    LeaveStatus  `json:"status" yaml:"status"`
}

// IsApproved reports whether the leave affects capacity.
func (l Leave) IsApproved() bool {
	return l.Status == LeaveApproved
}

// ApprovedLeavesFor selects the approved leaves belonging to a user.
func ApprovedLeavesFor(leaves []Leave, email string) []Leave {
	var out []Leave
	for _, l := range leaves {
		if l.IsApproved() && l.UserEmail == email {
			out = append(out, l)
		}
	}
	return out
}
