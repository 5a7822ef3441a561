// Package model defines core types used throughout obscube.
//
// # Identity Types
//
//   - RecordID: Stable insertion-rank identifier for an observation (uint32)
//   - SourceID: Fixed 48-bit transmitter identifier (6 bytes)
//
// # Data Types
//
//   - Observation: A single immutable signal reading
//   - Record: A RecordID paired with its materialized Observation
//   - LatLon: A geographic coordinate in WGS84 degrees
package model
