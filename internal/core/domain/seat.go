package domain

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatReserved  SeatStatus = "reserved"
	SeatSold      SeatStatus = "sold"
	SeatHeld      SeatStatus = "held"
)

func (s SeatStatus) Valid() bool {
	switch s {
	case SeatAvailable, SeatReserved, SeatSold, SeatHeld:
		return true
	}

	return false
}

// Seat is a single position in a row. Col, X and Y are display data only.
type Seat struct {
	ID        string     `json:"id"`
	Col       int        `json:"col"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	PriceTier int        `json:"priceTier"`
	Status    SeatStatus `json:"status"`
}

func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

// Row seats are stored left to right; sequence order defines adjacency.
type Row struct {
	Index int    `json:"index"`
	Seats []Seat `json:"seats"`
}

type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

type Section struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Transform Transform `json:"transform"`
	Rows      []Row     `json:"rows"`
}
