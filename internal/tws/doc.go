// Package tws provides formatting and parsing helpers for the TWS API client.
//
// Conversions:
//   - Wall clock: NowMillis, FormatMillis, FormatTime
//   - Platform dates: ParseDateTime, DateToISO, FormatDateTime
//   - Durations: DurationSeconds ("30 D" -> 2592000)
//   - Rendering: TickTypeString, ExecutionString, ContractString
//   - Historical request parameters: ShortWTS, ShortBarSize
//
// Conventions:
//   - Platform dates are "YYYYMMDD" or "YYYYMMDD HH:MM:SS", zone-less, returned as UTC
//   - Parse failures wrap ErrParse; renderers never fail and fall back to sentinel strings
//   - Local-time rendering uses the zone set with SetLocation (default time.Local)
package tws
