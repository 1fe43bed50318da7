package model

import "github.com/shopspring/decimal"

// Execution is a fill report from reqExecutions / execDetails.
type Execution struct {
	OrderID     int64           `json:"orderId"`     // API order ID
	ClientID    int64           `json:"clientId"`    // API client that placed the order
	ExecID      string          `json:"execId"`      // Unique execution ID (e.g., "0000e0d5.6551a0a2.01.01")
	Time        string          `json:"time"`        // Execution time ("YYYYMMDD HH:MM:SS")
	AcctNumber  string          `json:"acctNumber"`  // Account the fill belongs to
	Exchange    string          `json:"exchange"`    // Executing exchange
	Side        string          `json:"side"`        // "BOT" or "SLD"
	Shares      decimal.Decimal `json:"shares"`      // Filled quantity
	Price       float64         `json:"price"`       // Fill price
	PermID      int64           `json:"permId"`      // Permanent order ID
	Liquidation int             `json:"liquidation"` // 1 if a liquidation fill
	CumQty      decimal.Decimal `json:"cumQty"`      // Cumulative filled quantity
	AvgPrice    float64         `json:"avgPrice"`    // Average fill price
}

// Contract describes a tradeable instrument.
type Contract struct {
	ConID                        int64   `json:"conId"`                        // Contract ID (0 if unresolved)
	Symbol                       string  `json:"symbol"`                       // Underlying symbol
	SecType                      string  `json:"secType"`                      // "STK", "OPT", "FUT", "CASH", ...
	LastTradeDateOrContractMonth string  `json:"lastTradeDateOrContractMonth"` // "YYYYMMDD" or "YYYYMM" (formerly "expiry")
	Strike                       float64 `json:"strike"`                       // Option strike
	Right                        string  `json:"right"`                        // "C" or "P"
	Multiplier                   string  `json:"multiplier"`                   // Contract multiplier
	Exchange                     string  `json:"exchange"`                     // Destination exchange
	Currency                     string  `json:"currency"`                     // Currency code
	LocalSymbol                  string  `json:"localSymbol"`                  // Exchange-local symbol
}
