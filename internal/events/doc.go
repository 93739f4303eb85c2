// Package events implements a minimal typed in-process event bus.
//
// Components subscribe by concrete event type and publishers never know who
// is listening, which keeps the cache pipeline decoupled from whatever
// produces item lifecycle notifications.
package events
