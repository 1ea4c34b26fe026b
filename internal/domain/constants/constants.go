// Package constants contains values shared between configuration and the layers that read it.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderDirect sends events in-process without a broker.
	PubSubProviderDirect = "direct"
	// PubSubProviderLocal posts push-shaped messages to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// DefaultPageSize is used whenever pagination.pageSize is not configured.
	DefaultPageSize = 10
)
