// Package maintenance implements the catalog upkeep operations: adding and
// removing entries with their icon assets, validating every tracked path,
// initializing and checking update baselines, and launching targets.
package maintenance
