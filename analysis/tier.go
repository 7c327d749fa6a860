package analysis

import "github.com/lox/holdem-equity/poker"

// Tier is a coarse preflop strength bucket.
type Tier string

const (
	TierPremium Tier = "Premium"
	TierStrong  Tier = "Strong"
	TierMedium  Tier = "Medium"
	TierWeak    Tier = "Weak"
	TierTrash   Tier = "Trash"
)

// Tier buckets the class: Premium (JJ+, AK), Strong (TT, AQ, AJ),
// Medium (77-99, suited broadway), Weak (22-66, suited connectors and
// one-gappers), Trash (everything else).
func (c Class) Tier() Tier {
	hi, lo := c.High, c.Low

	switch {
	case c.IsPair() && hi >= poker.Jack:
		return TierPremium
	case hi == poker.Ace && lo == poker.King:
		return TierPremium
	case c.IsPair() && hi == poker.Ten:
		return TierStrong
	case hi == poker.Ace && (lo == poker.Queen || lo == poker.Jack):
		return TierStrong
	case c.IsPair() && hi >= poker.Seven:
		return TierMedium
	case c.Suited && lo >= poker.Ten:
		return TierMedium
	case c.IsPair():
		return TierWeak
	case c.Suited && hi-lo <= 2:
		return TierWeak
	default:
		return TierTrash
	}
}

// TierOf returns the tier of a hand's class.
func TierOf(h poker.Hand) Tier {
	return ClassOf(h).Tier()
}
