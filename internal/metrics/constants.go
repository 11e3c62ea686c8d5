package metrics

// Metric Names
const (
	MetricNameItemsAppraised        = "guildstock_items_appraised_total"
	MetricNameItemsExpired          = "guildstock_items_expired_total"
	MetricNameDaysAdvanced          = "guildstock_days_advanced_total"
	MetricNameUnknownCategoryErrors = "guildstock_unknown_category_errors_total"
)

// Help Texts
const (
	HelpTextItemsAppraised        = "Total number of per-item daily revaluations applied"
	HelpTextItemsExpired          = "Total number of items that crossed their expiry date"
	HelpTextDaysAdvanced          = "Total number of simulated days advanced"
	HelpTextUnknownCategoryErrors = "Total number of records skipped due to an unknown category"
)

// Label Names
const (
	LabelCategory = "category"
)

// MetricNamePrefix scopes snapshot output to this application's metrics
const MetricNamePrefix = "guildstock_"
