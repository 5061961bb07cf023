package dto

type StateOutput struct {
	Mode          string
	Remaining     int
	Clock         string
	Running       bool
	CompletedWork int
}

type SelectModeInput struct {
	Mode string
}

type StatsInput struct {
	// SinceDays limits the totals to the last N days; 0 means all time.
	SinceDays int
}

type StatsOutput struct {
	WorkIntervals  int
	BreakIntervals int
	FocusMinutes   int
}
