// Package services implements the core merge logic behind the driving ports.
//
// The central type is Builder, the stateful accumulator that merges any
// number of parsed calendars into one component sequence with UID-based
// event identity and VTIMEZONE deduplication. MergeService wraps it behind
// the driving.Merger port: parse -> ingest -> assemble -> serialize.
package services
