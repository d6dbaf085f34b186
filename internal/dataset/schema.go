// Package dataset owns the practice database: its schema, seed rows and
// the executor that runs learner queries against it.
package dataset

// KeyKind marks a column as a primary or foreign key.
type KeyKind string

const (
	KeyNone    KeyKind = ""
	KeyPrimary KeyKind = "PK"
	KeyForeign KeyKind = "FK"
)

// Column describes a single column for display.
type Column struct {
	Name string
	Type string
	Key  KeyKind
	// Ref names the referenced table for foreign keys.
	Ref  string
	Note string
}

// Table describes a dataset table for display.
type Table struct {
	Name    string
	Columns []Column
}

// MicrosPerUnit is the number of micros in one unit of currency.
const MicrosPerUnit = 1_000_000

// Schema returns the dataset tables in creation order.
func Schema() []Table {
	return []Table{
		{Name: "campaigns", Columns: []Column{
			{Name: "campaign_id", Type: "INTEGER", Key: KeyPrimary},
			{Name: "campaign_name", Type: "TEXT"},
			{Name: "campaign_type", Type: "TEXT", Note: "SEARCH, DISPLAY, VIDEO, SHOPPING, PMAX"},
			{Name: "status", Type: "TEXT", Note: "ENABLED, PAUSED"},
			{Name: "daily_budget_micros", Type: "INTEGER", Note: "divide by 1,000,000 for USD"},
			{Name: "bidding_strategy", Type: "TEXT"},
			{Name: "start_date", Type: "DATE"},
		}},
		{Name: "ad_groups", Columns: []Column{
			{Name: "ad_group_id", Type: "INTEGER", Key: KeyPrimary},
			{Name: "campaign_id", Type: "INTEGER", Key: KeyForeign, Ref: "campaigns"},
			{Name: "ad_group_name", Type: "TEXT"},
			{Name: "status", Type: "TEXT"},
			{Name: "cpc_bid_micros", Type: "INTEGER"},
		}},
		{Name: "ad_performance_daily", Columns: []Column{
			{Name: "id", Type: "INTEGER", Key: KeyPrimary},
			{Name: "date", Type: "DATE"},
			{Name: "campaign_id", Type: "INTEGER", Key: KeyForeign, Ref: "campaigns"},
			{Name: "ad_group_id", Type: "INTEGER", Key: KeyForeign, Ref: "ad_groups"},
			{Name: "impressions", Type: "INTEGER"},
			{Name: "clicks", Type: "INTEGER"},
			{Name: "cost_micros", Type: "INTEGER"},
			{Name: "conversions", Type: "REAL"},
			{Name: "conversion_value", Type: "REAL"},
			{Name: "device", Type: "TEXT", Note: "MOBILE, DESKTOP"},
		}},
		{Name: "search_terms", Columns: []Column{
			{Name: "id", Type: "INTEGER", Key: KeyPrimary},
			{Name: "date", Type: "DATE"},
			{Name: "campaign_id", Type: "INTEGER", Key: KeyForeign, Ref: "campaigns"},
			{Name: "ad_group_id", Type: "INTEGER", Key: KeyForeign, Ref: "ad_groups"},
			{Name: "search_term", Type: "TEXT"},
			{Name: "impressions", Type: "INTEGER"},
			{Name: "clicks", Type: "INTEGER"},
			{Name: "cost_micros", Type: "INTEGER"},
			{Name: "conversions", Type: "REAL"},
		}},
		{Name: "conversions", Columns: []Column{
			{Name: "conversion_id", Type: "INTEGER", Key: KeyPrimary},
			{Name: "date", Type: "DATE"},
			{Name: "campaign_id", Type: "INTEGER", Key: KeyForeign, Ref: "campaigns"},
			{Name: "ad_group_id", Type: "INTEGER", Key: KeyForeign, Ref: "ad_groups"},
			{Name: "conversion_action", Type: "TEXT", Note: "PURCHASE, SIGN_UP, ADD_TO_CART"},
			{Name: "conversion_value", Type: "REAL"},
			{Name: "attribution_model", Type: "TEXT"},
		}},
	}
}

// TableNames returns the dataset table names in creation order.
func TableNames() []string {
	tables := Schema()
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

var ddl = []string{
	`CREATE TABLE campaigns (
		campaign_id INTEGER PRIMARY KEY,
		campaign_name TEXT NOT NULL,
		campaign_type TEXT NOT NULL,
		status TEXT NOT NULL,
		daily_budget_micros INTEGER,
		bidding_strategy TEXT,
		start_date DATE
	)`,
	`CREATE TABLE ad_groups (
		ad_group_id INTEGER PRIMARY KEY,
		campaign_id INTEGER NOT NULL,
		ad_group_name TEXT NOT NULL,
		status TEXT NOT NULL,
		cpc_bid_micros INTEGER,
		FOREIGN KEY (campaign_id) REFERENCES campaigns(campaign_id)
	)`,
	`CREATE TABLE ad_performance_daily (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date DATE NOT NULL,
		campaign_id INTEGER NOT NULL,
		ad_group_id INTEGER NOT NULL,
		impressions INTEGER,
		clicks INTEGER,
		cost_micros INTEGER,
		conversions REAL,
		conversion_value REAL,
		device TEXT,
		FOREIGN KEY (campaign_id) REFERENCES campaigns(campaign_id),
		FOREIGN KEY (ad_group_id) REFERENCES ad_groups(ad_group_id)
	)`,
	`CREATE TABLE search_terms (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date DATE NOT NULL,
		campaign_id INTEGER NOT NULL,
		ad_group_id INTEGER NOT NULL,
		search_term TEXT NOT NULL,
		impressions INTEGER,
		clicks INTEGER,
		cost_micros INTEGER,
		conversions REAL,
		FOREIGN KEY (campaign_id) REFERENCES campaigns(campaign_id),
		FOREIGN KEY (ad_group_id) REFERENCES ad_groups(ad_group_id)
	)`,
	`CREATE TABLE conversions (
		conversion_id INTEGER PRIMARY KEY,
		date DATE NOT NULL,
		campaign_id INTEGER NOT NULL,
		ad_group_id INTEGER NOT NULL,
		conversion_action TEXT NOT NULL,
		conversion_value REAL,
		attribution_model TEXT,
		FOREIGN KEY (campaign_id) REFERENCES campaigns(campaign_id),
		FOREIGN KEY (ad_group_id) REFERENCES ad_groups(ad_group_id)
	)`,
}
