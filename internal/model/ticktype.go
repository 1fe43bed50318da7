package model

// TickType identifies a market data field in tickPrice/tickSize/tickString callbacks.
type TickType int

// Tick types, numbered as on the wire.
const (
	TickTypeBidSize TickType = iota
	TickTypeBid
	TickTypeAsk
	TickTypeAskSize
	TickTypeLast
	TickTypeLastSize
	TickTypeHigh
	TickTypeLow
	TickTypeVolume
	TickTypeClose
	TickTypeBidOptionComputation
	TickTypeAskOptionComputation
	TickTypeLastOptionComputation
	TickTypeModelOption
	TickTypeOpen
	TickTypeLow13Week
	TickTypeHigh13Week
	TickTypeLow26Week
	TickTypeHigh26Week
	TickTypeLow52Week
	TickTypeHigh52Week
	TickTypeAvgVolume
	TickTypeOpenInterest
	TickTypeOptionHistoricalVol
	TickTypeOptionImpliedVol
	TickTypeOptionBidExch
	TickTypeOptionAskExch
	TickTypeOptionCallOpenInterest
	TickTypeOptionPutOpenInterest
	TickTypeOptionCallVolume
	TickTypeOptionPutVolume
	TickTypeIndexFuturePremium
	TickTypeBidExch
	TickTypeAskExch
	TickTypeAuctionVolume
	TickTypeAuctionPrice
	TickTypeAuctionImbalance
	TickTypeMarkPrice
	TickTypeBidEFPComputation
	TickTypeAskEFPComputation
	TickTypeLastEFPComputation
	TickTypeOpenEFPComputation
	TickTypeHighEFPComputation
	TickTypeLowEFPComputation
	TickTypeCloseEFPComputation
	TickTypeLastTimestamp
	TickTypeShortable
	TickTypeFundamentalRatios
	TickTypeRTVolume
	TickTypeHalted
	TickTypeBidYield
	TickTypeAskYield
	TickTypeLastYield
	TickTypeCustOptionComputation
	TickTypeTradeCount
	TickTypeTradeRate
	TickTypeVolumeRate
	TickTypeLastRTHTrade
	TickTypeRTHistoricalVol
	TickTypeIBDividends
	TickTypeBondFactorMultiplier
	TickTypeRegulatoryImbalance
	TickTypeNewsTick
	TickTypeShortTermVolume3Min
	TickTypeShortTermVolume5Min
	TickTypeShortTermVolume10Min
	TickTypeDelayedBid
	TickTypeDelayedAsk
	TickTypeDelayedLast
	TickTypeDelayedBidSize
	TickTypeDelayedAskSize
	TickTypeDelayedLastSize
	TickTypeDelayedHigh
	TickTypeDelayedLow
	TickTypeDelayedVolume
	TickTypeDelayedClose
	TickTypeDelayedOpen
	TickTypeRTTrdVolume
	TickTypeCreditmanMarkPrice
	TickTypeCreditmanSlowMarkPrice
	TickTypeDelayedBidOptionComputation
	TickTypeDelayedAskOptionComputation
	TickTypeDelayedLastOptionComputation
	TickTypeDelayedModelOptionComputation
	TickTypeLastExch
	TickTypeLastRegTime
	TickTypeFuturesOpenInterest
	TickTypeAvgOptVolume
	TickTypeDelayedLastTimestamp
)

// TickTypeUnknown is the rendering of codes outside the known set.
const TickTypeUnknown = "unknown"

var tickTypeNames = [...]string{
	TickTypeBidSize:                       "bidSize",
	TickTypeBid:                           "bidPrice",
	TickTypeAsk:                           "askPrice",
	TickTypeAskSize:                       "askSize",
	TickTypeLast:                          "lastPrice",
	TickTypeLastSize:                      "lastSize",
	TickTypeHigh:                          "high",
	TickTypeLow:                           "low",
	TickTypeVolume:                        "volume",
	TickTypeClose:                         "close",
	TickTypeBidOptionComputation:          "bidOptComp",
	TickTypeAskOptionComputation:          "askOptComp",
	TickTypeLastOptionComputation:         "lastOptComp",
	TickTypeModelOption:                   "modelOptComp",
	TickTypeOpen:                          "open",
	TickTypeLow13Week:                     "13WeekLow",
	TickTypeHigh13Week:                    "13WeekHigh",
	TickTypeLow26Week:                     "26WeekLow",
	TickTypeHigh26Week:                    "26WeekHigh",
	TickTypeLow52Week:                     "52WeekLow",
	TickTypeHigh52Week:                    "52WeekHigh",
	TickTypeAvgVolume:                     "AvgVolume",
	TickTypeOpenInterest:                  "OpenInterest",
	TickTypeOptionHistoricalVol:           "OptionHistoricalVolatility",
	TickTypeOptionImpliedVol:              "OptionImpliedVolatility",
	TickTypeOptionBidExch:                 "OptionBidExchStr",
	TickTypeOptionAskExch:                 "OptionAskExchStr",
	TickTypeOptionCallOpenInterest:        "OptionCallOpenInterest",
	TickTypeOptionPutOpenInterest:         "OptionPutOpenInterest",
	TickTypeOptionCallVolume:              "OptionCallVolume",
	TickTypeOptionPutVolume:               "OptionPutVolume",
	TickTypeIndexFuturePremium:            "IndexFuturePremium",
	TickTypeBidExch:                       "bidExch",
	TickTypeAskExch:                       "askExch",
	TickTypeAuctionVolume:                 "auctionVolume",
	TickTypeAuctionPrice:                  "auctionPrice",
	TickTypeAuctionImbalance:              "auctionImbalance",
	TickTypeMarkPrice:                     "markPrice",
	TickTypeBidEFPComputation:             "bidEFP",
	TickTypeAskEFPComputation:             "askEFP",
	TickTypeLastEFPComputation:            "lastEFP",
	TickTypeOpenEFPComputation:            "openEFP",
	TickTypeHighEFPComputation:            "highEFP",
	TickTypeLowEFPComputation:             "lowEFP",
	TickTypeCloseEFPComputation:           "closeEFP",
	TickTypeLastTimestamp:                 "lastTimestamp",
	TickTypeShortable:                     "shortable",
	TickTypeFundamentalRatios:             "fundamentals",
	TickTypeRTVolume:                      "RTVolume",
	TickTypeHalted:                        "halted",
	TickTypeBidYield:                      "bidYield",
	TickTypeAskYield:                      "askYield",
	TickTypeLastYield:                     "lastYield",
	TickTypeCustOptionComputation:         "custOptComp",
	TickTypeTradeCount:                    "trades",
	TickTypeTradeRate:                     "trades/min",
	TickTypeVolumeRate:                    "volume/min",
	TickTypeLastRTHTrade:                  "lastRTHTrade",
	TickTypeRTHistoricalVol:               "RTHistoricalVol",
	TickTypeIBDividends:                   "IBDividends",
	TickTypeBondFactorMultiplier:          "bondFactorMultiplier",
	TickTypeRegulatoryImbalance:           "regulatoryImbalance",
	TickTypeNewsTick:                      "newsTick",
	TickTypeShortTermVolume3Min:           "shortTermVolume3Min",
	TickTypeShortTermVolume5Min:           "shortTermVolume5Min",
	TickTypeShortTermVolume10Min:          "shortTermVolume10Min",
	TickTypeDelayedBid:                    "delayedBid",
	TickTypeDelayedAsk:                    "delayedAsk",
	TickTypeDelayedLast:                   "delayedLast",
	TickTypeDelayedBidSize:                "delayedBidSize",
	TickTypeDelayedAskSize:                "delayedAskSize",
	TickTypeDelayedLastSize:               "delayedLastSize",
	TickTypeDelayedHigh:                   "delayedHigh",
	TickTypeDelayedLow:                    "delayedLow",
	TickTypeDelayedVolume:                 "delayedVolume",
	TickTypeDelayedClose:                  "delayedClose",
	TickTypeDelayedOpen:                   "delayedOpen",
	TickTypeRTTrdVolume:                   "rtTrdVolume",
	TickTypeCreditmanMarkPrice:            "creditmanMarkPrice",
	TickTypeCreditmanSlowMarkPrice:        "creditmanSlowMarkPrice",
	TickTypeDelayedBidOptionComputation:   "delayedBidOptComp",
	TickTypeDelayedAskOptionComputation:   "delayedAskOptComp",
	TickTypeDelayedLastOptionComputation:  "delayedLastOptComp",
	TickTypeDelayedModelOptionComputation: "delayedModelOptComp",
	TickTypeLastExch:                      "lastExchange",
	TickTypeLastRegTime:                   "lastRegTime",
	TickTypeFuturesOpenInterest:           "futuresOpenInterest",
	TickTypeAvgOptVolume:                  "avgOptVolume",
	TickTypeDelayedLastTimestamp:          "delayedLastTimestamp",
}

// String returns the mnemonic for t, or "unknown" for unrecognized codes.
func (t TickType) String() string {
	if t < 0 || int(t) >= len(tickTypeNames) {
		return TickTypeUnknown
	}
	return tickTypeNames[t]
}

// Known reports whether t is a recognized tick type.
func (t TickType) Known() bool {
	return t >= 0 && int(t) < len(tickTypeNames)
}

// TickTypes returns every known tick type in code order.
func TickTypes() []TickType {
	out := make([]TickType, len(tickTypeNames))
	for i := range tickTypeNames {
		out[i] = TickType(i)
	}
	return out
}
