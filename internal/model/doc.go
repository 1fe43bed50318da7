// Package model defines the TWS API record types shared across packages.
//
// Conventions:
//   - Order, client, contract and permanent IDs: int64
//   - Share quantities: decimal.Decimal (the API transmits them as decimal strings)
//   - Prices: float64
//   - Times: strings in the platform encoding ("YYYYMMDD HH:MM:SS"), parsed by package tws
package model
