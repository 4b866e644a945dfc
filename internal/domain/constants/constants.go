// Package constants contains provider names shared by configuration and infrastructure.
package constants

const (
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderCloud publishes events to any gocloud.dev topic URL (mem://, gcppubsub://, ...).
	PubSubProviderCloud = "gocloud"
)

// EnvDevelop is the env.env value of a local deployment.
const EnvDevelop = "develop"
