package domain

// Table is a mongo collection name
type Table string

const (
	TableMarketplaceConfigs Table = "marketplace_configs"
	TablePrompts            Table = "prompts"
	TableListings           Table = "listings"
	TableBalances           Table = "balances"
	TableHoldings           Table = "holdings"
	TableActivities         Table = "activities"
	TableAccounts           Table = "accounts"
)
