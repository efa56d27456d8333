package dashboard

// Summary is the server-computed dashboard aggregate. The console renders
// it read-only; all counting happens on the backend.
type Summary struct {
	TotalVisitors         int64           `json:"totalVisitors"`
	TodaysVisitors        int64           `json:"todaysVisitors"`
	TotalProductInterests int64           `json:"totalProductInterests"`
	RecentVisitors        []RecentVisitor `json:"recentVisitors"`
	TopProducts           []TopProduct    `json:"topProducts"`
}

type RecentVisitor struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

type TopProduct struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
