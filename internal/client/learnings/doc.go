// Package learnings keeps the signed-in user's learning items grouped by
// server-defined category and reconciles local edits with the backend.
//
// A Synchronizer owns all state shown on the learnings view: the category
// list, the derived sections, per-category drafts and submitting flags, and
// the loading, refreshing and error indicators. Network calls are made
// without holding the state lock; each response is applied as a single
// transition afterwards. Item reloads carry a generation number so that only
// the most recently issued reload can change sections. After Close no
// response changes state.
//
// Users are told about failures through a Notifier; destructive actions are
// gated by a Confirmer.
package learnings
