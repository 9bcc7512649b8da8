package tokenstore

// StorageKey is the fixed name the bearer token is persisted under.
const StorageKey = "jwt_token"

// Store holds exactly one bearer token.
//
// Implementations are fail-open: when the backing storage is unavailable Get reports the
// token as absent and Set/Clear return without effect. A stored token is not a server
// verified session.
type Store interface {
	// Get returns the stored token and true, or "" and false when nothing is stored
	Get() (string, bool)

	// Set overwrites the stored token. The value is not validated.
	Set(token string)

	// Clear removes the stored token. Safe to call when nothing is stored.
	Clear()
}
