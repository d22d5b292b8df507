// Package model defines the dock's domain data structures: icon entries,
// screen geometry, the in-memory dock configuration, its on-disk document
// form, and the lifecycle status of a loaded dock.
package model
