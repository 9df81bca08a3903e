package domain

import "time"

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Street      string       `json:"street"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	ZipCode     string       `json:"zipCode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type LegalDocs struct {
	FSSAILicenseNumber   string `json:"fssaiLicenseNumber"`
	FSSAICertificateURL  string `json:"fssaiCertificateUrl,omitempty"`
	PANNumber            string `json:"panNumber,omitempty"`
	GSTNumber            string `json:"gstNumber,omitempty"`
	GSTCertificateURL    string `json:"gstCertificateUrl,omitempty"`
	TradeLicenseNumber   string `json:"tradeLicenseNumber,omitempty"`
	TradeLicenseURL      string `json:"tradeLicenseUrl,omitempty"`
	HealthCertificateURL string `json:"healthCertificateUrl,omitempty"`
}

type OpeningHours struct {
	Day       int    `json:"day"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsClosed  bool   `json:"isClosed"`
}

type Restaurant struct {
	ID               string         `json:"_id,omitempty"`
	Owner            string         `json:"owner,omitempty"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Email            string         `json:"email"`
	ContactNumber    string         `json:"contactNumber"`
	Address          Address        `json:"address"`
	LegalDocs        LegalDocs      `json:"legalDocs"`
	Image            string         `json:"image,omitempty"`
	IsManualOverride bool           `json:"isManualOverride"`
	OpeningHours     []OpeningHours `json:"openingHours"`
	Status           string         `json:"status,omitempty"`
	IsVerified       bool           `json:"isVerified,omitempty"`
	IsOpen           bool           `json:"isOpen,omitempty"`
	Rating           float64        `json:"rating,omitempty"`
	NumReviews       int            `json:"numReviews,omitempty"`
	CreatedAt        time.Time      `json:"createdAt,omitempty"`
	UpdatedAt        time.Time      `json:"updatedAt,omitempty"`
}

type Variant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	ID          string    `json:"_id,omitempty"`
	Owner       string    `json:"owner,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Variants    []Variant `json:"variants,omitempty"`
	Category    string    `json:"category"`
	IsVeg       bool      `json:"isVeg"`
	IsActive    bool      `json:"isActive"`
	Image       string    `json:"image,omitempty"`
	Ingredients []string  `json:"ingredients,omitempty"`
	Restaurants []string  `json:"restaurants,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// DisplayPrice is the price shown in listings: the cheapest variant when
// variants exist, the base price otherwise.
func (m MenuItem) DisplayPrice() float64 {
	if len(m.Variants) == 0 {
		return m.Price
	}
	min := m.Variants[0].Price
	for _, v := range m.Variants[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	return min
}

type Category struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Parent    *string   `json:"parent,omitempty"`
	Owner     string    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,omitempty"`
}

type OrderParty struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

type Order struct {
	ID              string      `json:"_id"`
	Status          OrderStatus `json:"status"`
	User            *OrderParty `json:"user,omitempty"`
	Restaurant      *OrderParty `json:"restaurant,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress"`
	TotalAmount     float64     `json:"totalAmount"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
}

type Review struct {
	ID         string      `json:"_id"`
	Rating     int         `json:"rating"`
	Comment    string      `json:"comment"`
	User       *OrderParty `json:"user,omitempty"`
	Restaurant *OrderParty `json:"restaurant,omitempty"`
	Replied    bool        `json:"replied,omitempty"`
	CreatedAt  time.Time   `json:"createdAt,omitempty"`
}

type Transaction struct {
	ID                   string            `json:"_id"`
	Order                string            `json:"order,omitempty"`
	Restaurant           *OrderParty       `json:"restaurant,omitempty"`
	Owner                string            `json:"owner,omitempty"`
	Amount               float64           `json:"amount"`
	Status               TransactionStatus `json:"status"`
	PaymentGateway       string            `json:"paymentGateway"`
	GatewayTransactionID string            `json:"gatewayTransactionId"`
	Type                 string            `json:"type"`
	CreatedAt            time.Time         `json:"createdAt,omitempty"`
	UpdatedAt            time.Time         `json:"updatedAt,omitempty"`
}

type TransactionStats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTransactions int     `json:"totalTransactions"`
}
