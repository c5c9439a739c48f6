package models

import "time"

// Response shapes are explicit allow-lists. Nothing here ever includes the
// password column, and each view names exactly the fields external callers
// get.

const orderDateLayout = "2006-01-02 15:04:05"

type OrderView struct {
	ID              uint   `json:"id"`
	OrderDate       string `json:"order_date,omitempty"`
	QuantityOrdered int    `json:"quantity_ordered"`
	TotalPrice      int    `json:"total_price"`
	OrderStatus     string `json:"order_status"`
}

// Serialize returns the order subset exposed to clients, with the order date
// formatted as "YYYY-MM-DD HH:MM:SS".
func (o *Order) Serialize() OrderView {
	v := OrderView{
		ID:              o.ID,
		QuantityOrdered: o.QuantityOrdered,
		TotalPrice:      o.TotalPrice,
		OrderStatus:     o.OrderStatus,
	}
	if !o.OrderDate.IsZero() {
		v.OrderDate = o.OrderDate.UTC().Format(orderDateLayout)
	}
	return v
}

type UserView struct {
	ID               uint      `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	RegistrationDate time.Time `json:"registration_date"`
	Image            string    `json:"image,omitempty"`
}

func (u *User) Public() UserView {
	return UserView{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		RegistrationDate: u.RegistrationDate,
		Image:            u.Image,
	}
}

type FarmerView struct {
	ID       uint   `json:"id"`
	FarmName string `json:"farm_name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
	UserID   uint   `json:"user_id"`
}

func (f *Farmer) Public() FarmerView {
	return FarmerView{
		ID:       f.ID,
		FarmName: f.FarmName,
		Location: f.Location,
		Contact:  f.Contact,
		UserID:   f.UserID,
	}
}

type ProductView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Price             int    `json:"price"`
	Description       string `json:"description"`
	QuantityAvailable int    `json:"quantity_available"`
	Category          string `json:"category"`
	Image             string `json:"image,omitempty"`
	FarmerID          *uint  `json:"farmer_id,omitempty"`
}

func (p *Product) Public() ProductView {
	return ProductView{
		ID:                p.ID,
		Name:              p.Name,
		Price:             p.Price,
		Description:       p.Description,
		QuantityAvailable: p.QuantityAvailable,
		Category:          p.Category,
		Image:             p.Image,
		FarmerID:          p.FarmerID,
	}
}

type PaymentView struct {
	ID            uint      `json:"id"`
	OrderID       uint      `json:"order_id"`
	PaymentAmount int       `json:"payment_amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	TransactionID int       `json:"transaction_id"`
}

func (p *Payment) Public() PaymentView {
	return PaymentView{
		ID:            p.ID,
		OrderID:       p.OrderID,
		PaymentAmount: p.PaymentAmount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		TransactionID: p.TransactionID,
	}
}

type ReviewView struct {
	ID         uint      `json:"id"`
	CustomerID uint      `json:"customer_id"`
	ProductID  uint      `json:"product_id"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments"`
	ReviewDate time.Time `json:"review_date"`
}

func (r *Review) Public() ReviewView {
	return ReviewView{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Rating:     r.Rating,
		Comments:   r.Comments,
		ReviewDate: r.ReviewDate,
	}
}

type ChatMessageView struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"sender_id"`
	ReceiverID  uint      `json:"receiver_id"`
	MessageText string    `json:"message_text"`
	Timestamp   time.Time `json:"timestamp"`
}

func (m *ChatMessage) Public() ChatMessageView {
	return ChatMessageView{
		ID:          m.ID,
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		MessageText: m.MessageText,
		Timestamp:   m.Timestamp,
	}
}
