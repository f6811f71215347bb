package domain

import "time"

// SensitivityLevel classifies a disclosed message by how dangerous it is to
// leave on screen. The set is closed: every level has exactly one policy in
// the table below, so a new level cannot ship without a TTL decision.
type SensitivityLevel int

const (
	SensitivityPrivateKey SensitivityLevel = iota
	SensitivityMnemonic
	SensitivityBalance
	SensitivityDepositAddress
	SensitivityTxConfirmation
)

func (l SensitivityLevel) String() string {
	switch l {
	case SensitivityPrivateKey:
		return "private_key"
	case SensitivityMnemonic:
		return "mnemonic"
	case SensitivityBalance:
		return "balance"
	case SensitivityDepositAddress:
		return "deposit_address"
	case SensitivityTxConfirmation:
		return "tx_confirmation"
	default:
		return "unknown"
	}
}

// DisclosurePolicy is the handling rule for one sensitivity level.
type DisclosurePolicy struct {
	TTL     time.Duration // auto-delete delay after sending
	Protect bool          // forbid forwarding/saving on the transport
}

var disclosurePolicies = map[SensitivityLevel]DisclosurePolicy{
	SensitivityPrivateKey:     {TTL: 30 * time.Second, Protect: true},
	SensitivityMnemonic:       {TTL: 60 * time.Second, Protect: true},
	SensitivityBalance:        {TTL: 60 * time.Second, Protect: false},
	SensitivityDepositAddress: {TTL: 120 * time.Second, Protect: false},
	SensitivityTxConfirmation: {TTL: 300 * time.Second, Protect: false},
}

// Policy returns the disclosure policy for the level. An unknown level gets
// the strictest treatment rather than none.
func (l SensitivityLevel) Policy() DisclosurePolicy {
	if p, ok := disclosurePolicies[l]; ok {
		return p
	}
	return disclosurePolicies[SensitivityPrivateKey]
}

// PendingDeletion is one scheduled cleanup task for a disclosed message.
type PendingDeletion struct {
	ChatID    int64
	MessageID int
	DeleteAt  time.Time
}
