// Package hist builds historical-data request descriptors.
//
// A Request names one reqHistoricalData call: contract, end date, duration, bar size
// and whatToShow. Requests are keyed by the short codes from package tws
// ("8314_T_eod_rth"), and long requests are split into chunks no longer than the
// configured maximum so each chunk stays within the platform's pacing limits.
package hist
