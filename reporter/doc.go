// Package reporter connects an application's error reporting to the
// assembled logger.
//
// Values are reported with a priority such as "error" or "access".
// Standard priorities map to log levels; every entry also carries the
// priority as a field, so the priority processor can move priorities
// that are not levels, such as "access", to a channel of their own.
//
// The Adapter is passed to whoever needs it. There is no package-level
// instance.
package reporter
