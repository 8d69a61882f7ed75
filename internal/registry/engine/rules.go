package engine

import "kycnet/internal/registry/models"

// applyStatusRule recomputes the derived verification flag after a vote.
//
// Two steps, in this exact order: the majority rule sets verified when
// upvotes exceed downvotes, then the downvote override unconditionally clears
// it when downvotes exceed a third of all registered banks (integer floor).
// The override always runs, so a large downvote count wins over a favorable
// ratio.
func applyStatusRule(c *models.Customer, numberOfBanks int) {
	c.Verified = c.Upvotes > c.Downvotes
	if c.Downvotes > numberOfBanks/3 {
		c.Verified = false
	}
}

// applySuspensionRule clears a bank's voting eligibility once its complaint
// count exceeds a third of all registered banks. Complaints never restore
// eligibility; only the administrator can re-grant it.
//
// Returns true when this call is the one that revoked eligibility.
func applySuspensionRule(b *models.Bank, numberOfBanks int) bool {
	if b.ComplaintsReported <= numberOfBanks/3 {
		return false
	}
	wasEligible := b.EligibleToVote
	b.EligibleToVote = false
	return wasEligible
}
