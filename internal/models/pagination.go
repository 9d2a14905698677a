package models

// Pagination describes a page slice of a filtered collection
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Page holds one page of results together with its pagination metadata
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// DashboardStats is the aggregate view for the admin dashboard
type DashboardStats struct {
	TotalBookings     int64     `json:"totalBookings"`
	PendingBookings   int64     `json:"pendingBookings"`
	ConfirmedBookings int64     `json:"confirmedBookings"`
	CancelledBookings int64     `json:"cancelledBookings"`
	TotalRevenue      float64   `json:"totalRevenue"`
	TotalInquiries    int64     `json:"totalInquiries"`
	NewInquiries      int64     `json:"newInquiries"`
	RecentBookings    []Booking `json:"recentBookings"`
	RecentInquiries   []Inquiry `json:"recentInquiries"`
}
