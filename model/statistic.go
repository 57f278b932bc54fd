package model

type MonthlyRevenueEntry struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type AccountStatusStats struct {
	StatusCount
	Tutors StatusCount `json:"tutors"`
	Users  StatusCount `json:"users"`
}

type CourseStatusStats = StatusCount

type TopPerformer struct {
	AccountId     uint   `json:"accountId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	FinishedCount int64  `json:"finishedCount"`
}

type DashboardOverview struct {
	Accounts     int64   `json:"accounts"`
	Tutors       int64   `json:"tutors"`
	Courses      int64   `json:"courses"`
	Orders       int64   `json:"orders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
