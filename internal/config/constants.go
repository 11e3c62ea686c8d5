package config

// Default configuration values
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultStockFile      = "stock.json"
	DefaultSimulationDays = "1"
)
