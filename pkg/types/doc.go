// Package types defines the entity model, endpoint registry, configuration,
// and standard errors shared by the Shopfront admin console packages.
package types
