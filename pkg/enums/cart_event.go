package enums

// CartEvent names the mutation that a cart operation performed, so the
// caller can pick the matching user notification.
type CartEvent string

const (
	CartEventAdded   CartEvent = "added"
	CartEventUpdated CartEvent = "updated"
	CartEventRemoved CartEvent = "removed"
	CartEventCleared CartEvent = "cleared"
)
