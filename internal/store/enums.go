package store

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// Entry methods
const (
	EntryMethodEmail    = "email"
	EntryMethodReferral = "referral"
)

// Entry action types
const (
	ActionTypeEmailSignup  = "email_signup"
	ActionTypeVisitURL     = "visit_url"
	ActionTypeSocialFollow = "social_follow"
	ActionTypeSocialShare  = "social_share"
	ActionTypeReferral     = "referral"
)

// SignupPoints is what every entry starts with.
const SignupPoints = 1
