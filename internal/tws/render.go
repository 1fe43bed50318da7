package tws

import (
	"fmt"

	"github.com/rickgao/tws-tools/internal/model"
)

// TickTypeString returns the mnemonic for a tick type code ("bidPrice", "lastSize", ...).
// Unknown codes render as "unknown".
func TickTypeString(code int) string {
	return model.TickType(code).String()
}

// ExecutionString renders an execution on a single line.
// Floating fields carry six significant digits.
func ExecutionString(ex model.Execution) string {
	return fmt.Sprintf("orderId:%d: clientId:%d, execId:%s, "+
		"time:%s, acctNumber:%s, exchange:%s, side:%s, shares:%.6g, price:%.6g, "+
		"permId:%d, liquidation:%d, cumQty:%.6g, avgPrice:%.6g",
		ex.OrderID, ex.ClientID, ex.ExecID, ex.Time,
		ex.AcctNumber, ex.Exchange, ex.Side,
		ex.Shares.InexactFloat64(), ex.Price, ex.PermID, ex.Liquidation,
		ex.CumQty.InexactFloat64(), ex.AvgPrice)
}

const (
	contractVerboseFormat = "conId:%d, symbol:%s, secType:%s, expiry:%s, strike:%.6g, " +
		"right:%s, multiplier:%s, exchange:%s, currency:%s, localSymbol:%s"
	contractCompactFormat = "%d,%s,%s,%s,%.6g,%s,%s,%s,%s,%s"
)

// ContractString renders a contract as "label:value" pairs when verbose is set,
// otherwise as a bare comma-separated list in the same field order.
func ContractString(c model.Contract, verbose bool) string {
	format := contractCompactFormat
	if verbose {
		format = contractVerboseFormat
	}
	return fmt.Sprintf(format,
		c.ConID, c.Symbol, c.SecType,
		c.LastTradeDateOrContractMonth, c.Strike, c.Right,
		c.Multiplier, c.Exchange, c.Currency,
		c.LocalSymbol)
}
