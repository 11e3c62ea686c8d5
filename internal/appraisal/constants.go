package appraisal

// Desirability bounds for ordinary categories
const (
	MinDesirability = 0
	MaxDesirability = 50
)

// LegendaryDesirability is the pinned score of legendary tokens.
// They sit outside the ordinary bounds and never move.
const LegendaryDesirability = 80

// Event pass countdown bands (inclusive upper edges)
const (
	EventPassMidThreshold   = 10 // +2 per day at 10 days out or closer
	EventPassFinalThreshold = 5  // +3 per day at 5 days out or closer
)

// Log messages
const (
	LogMsgUnknownCategory = "Skipping item with unknown category"
	LogMsgDayAdvanced     = "Inventory advanced one day"
)
