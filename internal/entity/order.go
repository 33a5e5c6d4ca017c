package entity

import "time"

type Selection struct {
	Product  string `json:"product" binding:"required"`
	Color    string `json:"color" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Region   string `json:"region" binding:"required"`
	HasFront bool   `json:"has_front"`
	HasBack  bool   `json:"has_back"`
}

type Quote struct {
	ProductPrice int `json:"product_price"`
	ShippingCost int `json:"shipping_cost"`
	Total        int `json:"total"`
}

// OrderForm is what the customer submits from the order page.
type OrderForm struct {
	Product         string `json:"product" binding:"required"`
	Color           string `json:"color" binding:"required"`
	Size            string `json:"size" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,phone"`
	Address         string `json:"address" binding:"required"`
	Region          string `json:"region" binding:"required"`
	Note            string `json:"note"`
	ConfirmNoDesign bool   `json:"confirm_no_design"`
}

// Artifact is an exported design proof. Empty Data means the side had no design.
type Artifact struct {
	Side Side   `json:"side"`
	Data []byte `json:"-"`
	Path string `json:"path,omitempty"`
}

func (a Artifact) Empty() bool { return len(a.Data) == 0 }

// OrderContext is assembled once per submission and handed to the sink.
type OrderContext struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Form        OrderForm `json:"form"`
	ProductName string    `json:"product_name"`
	Quote       Quote     `json:"quote"`
	HasFront    bool      `json:"has_front"`
	HasBack     bool      `json:"has_back"`
	Front       Artifact  `json:"front"`
	Back        Artifact  `json:"back"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Quote  Quote  `json:"quote"`
}

// OrderEvent is published after a successful delivery.
type OrderEvent struct {
	OrderID   string    `json:"order_id"`
	SessionID string    `json:"session_id"`
	Product   string    `json:"product"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Region    string    `json:"region"`
	Total     int       `json:"total"`
	HasFront  bool      `json:"has_front"`
	HasBack   bool      `json:"has_back"`
	CreatedAt time.Time `json:"created_at"`
}
