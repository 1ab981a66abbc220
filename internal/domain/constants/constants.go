// Package constants contains values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Domain event types published through the EventPublisher
const (
	EventOTPRequested      = "otp.requested"
	EventBusinessOnboarded = "business.onboarded"
	EventReviewCreated     = "review.created"
)
