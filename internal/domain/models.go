package domain

// Specs holds the optional technical specification fields shown on a
// product detail page. Empty fields are omitted from the feed and the view.
type Specs struct {
	Engine       string `json:"engine,omitempty"`
	Power        string `json:"power,omitempty"`
	Torque       string `json:"torque,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	TopSpeed     string `json:"topSpeed,omitempty"`
	Weight       string `json:"weight,omitempty"`
	FuelCapacity string `json:"fuelCapacity,omitempty"`
	Mileage      string `json:"mileage,omitempty"`
}

// Product is immutable reference data loaded once from the catalog feed.
// Prices are whole rupees.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"originalPrice,omitempty"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured,omitempty"`
	Specs         Specs    `json:"specs"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Address is the delivery address collected at checkout.
type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
}

// OrderDetails is the contact block collected by the checkout form.
type OrderDetails struct {
	Name    string
	Email   string
	Phone   string
	Address Address
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | OUT_OF_STOCK
}
