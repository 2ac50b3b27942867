package tiers

import "strings"

// TierName represents the plan tier of an organiser
type TierName string

const (
	TierFree     TierName = "free"
	TierPro      TierName = "pro"
	TierBusiness TierName = "business"
)

// TierDisplayNames maps tier names to display strings
var TierDisplayNames = map[TierName]string{
	TierFree:     "Free",
	TierPro:      "Pro",
	TierBusiness: "Business",
}

// entriesPerCampaign is the entry cap of each tier. A missing tier means unlimited.
var entriesPerCampaign = map[TierName]int{
	TierFree: 500,
	TierPro:  10000,
}

// GetTierForPlan returns the tier of a stored plan name. Unknown plans fall back to free.
func GetTierForPlan(plan string) TierName {
	switch TierName(strings.ToLower(strings.TrimSpace(plan))) {
	case TierPro:
		return TierPro
	case TierBusiness:
		return TierBusiness
	default:
		return TierFree
	}
}

// GetTierDisplayName returns the display name for a tier
func GetTierDisplayName(tier TierName) string {
	if name, ok := TierDisplayNames[tier]; ok {
		return name
	}
	return "Free"
}

// EntryLimit returns the per-campaign entry cap of a tier, nil when unlimited.
func EntryLimit(tier TierName) *int {
	limit, ok := entriesPerCampaign[tier]
	if !ok {
		return nil
	}
	return &limit
}
