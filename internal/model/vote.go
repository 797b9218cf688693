package model

// Vote tokens accepted by the vote aggregator.
const (
	VoteS  = "S"
	VoteM  = "M"
	VoteL  = "L"
	VoteXL = "XL"
)

// ValidVotes is the fixed enumerated vote set.
var ValidVotes = []string{VoteS, VoteM, VoteL, VoteXL}

// IsValidVote reports whether v is a member of the vote set.
func IsValidVote(v string) bool {
	for _, valid := range ValidVotes {
		if v == valid {
			return true
		}
	}
	return false
}
