package domain

// EventBroadcaster fans an event out to every connected viewer.
// Fire-and-forget: no acknowledgment, no delivery guarantee.
type EventBroadcaster interface {
	Broadcast(event ViewerEvent)
}

// AssetStore is the serving collaborator for pre-rendered audio assets.
type AssetStore interface {
	Exists(file string) bool
	PublicURL(file string) string
}
