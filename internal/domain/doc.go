// Package domain models vehicle telemetry alert records from the iRASTE
// CAS/CAS-DMS roadside exports.
//
// # Data Source
//
// Records come from two flat CSV drops sharing one schema: the collision
// avoidance system feed (iraste_nxt_cas.csv) and the combined CAS plus driver
// monitoring feed (iraste_nxt_casdms.csv). Both carry Vehicle, Date, Time,
// Lat, Long, Speed, and Alert columns at minimum; extra columns are ignored.
//
// # Field Conventions
//
// Date:
//
//	ISO calendar date, e.g. "2024-03-18". Older drops used day-first
//	("18-03-2024") and slash ("2024/03/18") forms, all of which parse.
//	Day-of-week is derived from the parsed date.
//
// Time:
//
//	24-hour time of day, "15:04:05" or "15:04". Unparseable values become
//	null rather than failing a request; aggregations over time tolerate null.
//
// Speed:
//
//	Kilometres per hour as a non-negative float. Banded into categories with
//	lower-inclusive boundaries: <60 Low, 60-80 Medium, >=80 High.
//
// Alert:
//
//	Categorical label from a small vocabulary. Five types are considered
//	safety-critical: cas_ldw (lane departure), cas_hmw (headway monitoring),
//	cas_pcw (pedestrian collision), cas_fcw (forward collision), and
//	hard_brake. The remaining labels are driver-monitoring events.
//
// # Normalization
//
// All text-to-value coercion happens in [Normalize], once per request, so no
// route applies its own ad-hoc typing. Field-level parse failures degrade to
// null (or zero for Speed) and are surfaced only as counters in
// [NormalizeStats]; they never fail a request.
package domain
