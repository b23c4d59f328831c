package api

// Role is the account role as reported by the backend
type Role string

const (
	RoleSuperAdmin    Role = "SUPER_ADMIN"
	RoleMerchantOwner Role = "MERCHANT_OWNER"
	RoleEmployee      Role = "EMPLOYEE"
)

// Valid reports whether the role is one of the three known variants.
// Anything else must be rejected by the caller, never defaulted.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleMerchantOwner, RoleEmployee:
		return true
	}
	return false
}

// Identity is the authenticated user's profile as known to the backend.
// MerchantID is empty while the account is not bound to a merchant.
type Identity struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	MerchantID string `json:"merchantId,omitempty"`
}

// Bound reports whether the identity is associated with a merchant
func (i Identity) Bound() bool {
	return i.MerchantID != ""
}

// FullName returns the display name
func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}

// WorkHours is one day's opening interval in a merchant schedule
type WorkHours struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Schedule maps weekday names to opening hours
type Schedule map[string]WorkHours

// Merchant is a business entity users are associated with
type Merchant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone,omitempty"`
	Email     string   `json:"email"`
	Currency  string   `json:"currency"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country"`
	Postcode  string   `json:"postcode,omitempty"`
	Schedule  Schedule `json:"schedule,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// Category is a product category scoped to a merchant
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MerchantID string `json:"merchantId"`
}

// Product is a sellable inventory item
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	CategoryID string  `json:"categoryId,omitempty"`
	MerchantID string  `json:"merchantId,omitempty"`
}

// ProductVariation is a variant of a product with its own price and stock
type ProductVariation struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Service is a bookable service offered by a merchant
type Service struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Duration   int     `json:"duration"`
	MerchantID string  `json:"merchantId,omitempty"`
}

// Slot is an available booking interval for a service.
// Times use the backend's zone-less timestamp format and are passed back
// verbatim when creating a reservation.
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SlotList is the response envelope for available slots
type SlotList struct {
	Items []Slot `json:"items"`
}

// Reservation is a booked service slot with customer contact details
type Reservation struct {
	ID               string `json:"id"`
	ServiceID        string `json:"serviceId"`
	ServiceName      string `json:"serviceName,omitempty"`
	EmployeeID       string `json:"employeeId"`
	EmployeeFullName string `json:"employeeFullName,omitempty"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	AppointedAt      string `json:"appointedAt"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// Order is a sale in progress or completed
type Order struct {
	ID         string `json:"id"`
	Status     string `json:"status,omitempty"`
	MerchantID string `json:"merchantId,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// OrderItem is a line in an order, referencing either a product or one of
// its variations (exactly one of the two ids is set)
type OrderItem struct {
	ID                 string `json:"id"`
	ProductID          string `json:"productId,omitempty"`
	ProductVariationID string `json:"productVariationId,omitempty"`
	Quantity           int    `json:"quantity"`
}

// Transaction is a payment attempt against an order
type Transaction struct {
	ID                string  `json:"id"`
	OrderID           string  `json:"orderId,omitempty"`
	PaymentMethodType string  `json:"paymentMethodType,omitempty"`
	Status            string  `json:"status,omitempty"`
	Amount            float64 `json:"amount"`
}

// Page is the backend's paginated response envelope
type Page[T any] struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Items  []T `json:"items"`
}
