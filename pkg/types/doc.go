// Package types defines the PropertyRecord entity, store configuration,
// and standard errors shared by the propdesk storage and view layers.
package types
