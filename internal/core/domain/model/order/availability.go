package order

// Availability summarizes the stock flags of a line sequence.
type Availability struct {
	AllInStock   bool
	HasShortfall bool
}

// EvaluateAvailability is total: an empty sequence is fully in stock.
func EvaluateAvailability(lines []LineItem) Availability {
	availability := Availability{AllInStock: true}
	for _, line := range lines {
		if !line.InStock() {
			availability.AllInStock = false
			availability.HasShortfall = true
			break
		}
	}
	return availability
}
