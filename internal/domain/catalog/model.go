package catalog

// Team is a permanent catalog team keyed by the feed's team id.
type Team struct {
	ID   int64
	Name string
	Code string
}

// Person is a permanent catalog player keyed by the feed's player id.
type Person struct {
	ID     int64
	Name   string
	TeamID int64
}
