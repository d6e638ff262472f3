package models

// Moderation states of a listing.
const (
	PostStatusActive  = "Active"
	PostStatusPending = "Pending"
	PostStatusDeleted = "Deleted"
)

type Location struct {
	Address  string `json:"address"`
	District string `json:"district"`
	City     string `json:"city"`
}

type Landlord struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type Image struct {
	URL string `json:"url"`
}

// Post is a room-rental listing as returned by the backend, with the
// landlord reference populated server-side.
type Post struct {
	ID       string   `json:"_id"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	Price    float64  `json:"price"`
	Location Location `json:"location"`
	RoomType string   `json:"roomType"`
	Landlord Landlord `json:"landlord"`
	Images   []Image  `json:"images"`
}

func (p Post) EntityID() string { return p.ID }
