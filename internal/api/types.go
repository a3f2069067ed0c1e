package api

// Watchlist is a named, user-owned collection of ticker symbols. The id is
// server-assigned; the client has no identity for a watchlist beyond it.
type Watchlist struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Entry is a single ticker membership within a watchlist. Symbols are
// uppercase and unique within a watchlist.
type Entry struct {
	Symbol string `json:"symbol"`
}

// Suggestion is one symbol search result.
type Suggestion struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Profile holds a ticker's company and market snapshot fields.
type Profile struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Exchange          string  `json:"exchange"`
	Currency          string  `json:"currency"`
	Sector            string  `json:"sector"`
	Industry          string  `json:"industry"`
	MarketCap         float64 `json:"market_cap"`
	FullTimeEmployees int64   `json:"full_time_employees"`
	Website           string  `json:"website"`
	Summary           string  `json:"long_business_summary"`
	CurrentPrice      float64 `json:"current_price"`
	PreviousClose     float64 `json:"previous_close"`
	DayHigh           float64 `json:"day_high"`
	DayLow            float64 `json:"day_low"`
	Volume            int64   `json:"volume"`
	FiftyTwoWeekHigh  float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow   float64 `json:"fifty_two_week_low"`
	TrailingPE        float64 `json:"trailing_pe"`
	ForwardPE         float64 `json:"forward_pe"`
}

// Chart holds daily bar series as parallel arrays: the same index across all
// slices refers to the same trading day.
type Chart struct {
	Dates   []string  `json:"dates"`
	Opens   []float64 `json:"opens"`
	Highs   []float64 `json:"highs"`
	Lows    []float64 `json:"lows"`
	Closes  []float64 `json:"closes"`
	Volumes []float64 `json:"volumes"`
}

// Indicators is the backend's technical indicator set for one symbol.
type Indicators struct {
	RSI            float64 `json:"rsi"`
	MACD           float64 `json:"macd"`
	PiotroskiScore int     `json:"piotroski_score"`
}

// NewsItem is a single news article reference for a symbol.
type NewsItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	Msg    string `json:"msg"`
	UserID int64  `json:"user_id"`
}
