// Package hub provides a generic, thread-safe Subject/Observer notification
// hub. A [Hub] owns a single observable value and a dynamic, ordered set of
// subscribers; every accepted state change fans out to the subscribers that
// were registered at the moment the change was applied.
//
// # Main Types
//
//   - [Hub]: the generic subject, safe for concurrent use
//   - [Callback]: pull-model subscriber function (call [Hub.State] for the value)
//   - [Token]: opaque handle identifying one subscription
//   - [Policy]: predicate deciding whether a state change should notify
//   - [DeliveryError]: per-subscriber failure surfaced by [Hub.SetState]
//
// # Delivery Semantics
//
// SetState snapshots the subscriber list atomically before fanning out, so a
// single round is never affected by concurrent Subscribe or Unsubscribe calls;
// those take effect for the next round. Delivery order is subscription order.
// Subscriber callbacks run outside the hub's lock, so a slow subscriber never
// stalls membership changes. A failing or panicking subscriber does not
// interrupt the round: each failure is collected as a [DeliveryError] and the
// aggregate is returned from SetState after all deliveries complete.
//
// # Basic Usage
//
//	h := hub.New[int]()
//
//	tok := h.Subscribe(func() error {
//	    fmt.Println("count is now", h.State())
//	    return nil
//	})
//
//	if err := h.SetState(25); err != nil {
//	    log.Printf("some subscribers failed: %v", err)
//	}
//
//	h.Unsubscribe(tok)
//
// # Notification Policies
//
// By default every SetState call notifies, including one that sets the value
// already held (change detection is caller policy, not a hub guarantee). Pass
// [WithPolicy] to narrow the trigger, e.g. [FromZero] notifies only when the
// previous value was the zero value.
package hub
