package screener

// tickerByName maps company display names, as they appear in the scored
// record set, to their screener.in ticker symbols. Catalogue data is
// inconsistent about carrying tickers at all, so a table hit always beats
// whatever the record itself claims.
var tickerByName = map[string]string{
	"Adani Enterprises":               "ADANIENT",
	"Asian Paints":                    "ASIANPAINT",
	"Axis Bank":                       "AXISBANK",
	"Bajaj Finance":                   "BAJFINANCE",
	"Bharat Electronics":              "BEL",
	"Bharti Airtel":                   "BHARTIARTL",
	"Coal India":                      "COALINDIA",
	"Dr Reddys Laboratories":          "DRREDDY",
	"Eicher Motors":                   "EICHERMOT",
	"Grasim Industries":               "GRASIM",
	"HCL Technologies":                "HCLTECH",
	"HDFC Bank":                       "HDFCBANK",
	"Hindalco Industries":             "HINDALCO",
	"Hindustan Unilever":              "HINDUNILVR",
	"ICICI Bank":                      "ICICIBANK",
	"ITC":                             "ITC",
	"IndusInd Bank":                   "INDUSINDBK",
	"Infosys":                         "INFY",
	"JSW Steel":                       "JSWSTEEL",
	"Kotak Mahindra Bank":             "KOTAKBANK",
	"Larsen & Toubro":                 "LT",
	"Maruti Suzuki India":             "MARUTI",
	"NTPC":                            "NTPC",
	"Nestle India":                    "NESTLEIND",
	"Oil & Natural Gas Corporation":   "ONGC",
	"Power Grid Corporation of India": "POWERGRID",
	"Reliance Industries":             "RELIANCE",
	"State Bank of India":             "SBIN",
	"Sun Pharmaceutical Industries":   "SUNPHARMA",
	"Tata Consultancy Services":       "TCS",
	"Tata Motors":                     "TATAMOTORS",
	"Tata Steel":                      "TATASTEEL",
	"Tech Mahindra":                   "TECHM",
	"Titan Company":                   "TITAN",
	"UltraTech Cement":                "ULTRACEMCO",
	"Wipro":                           "WIPRO",
}
