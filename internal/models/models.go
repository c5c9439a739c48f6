package models

import (
	"time"

	"gorm.io/gorm"
)

// Table and column names follow the original production schema, so this
// layer can run against databases created before the Go rewrite.

const (
	RoleFarmer   = "Farmer"
	RoleCustomer = "customer"
)

type User struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"            json:"id"`
	Username         string    `gorm:"unique"                              json:"username"`
	Email            string    `gorm:"unique"                              json:"email"`
	Password         Password  `gorm:"column:_password_hash;type:text"     json:"-"`
	Role             string    `json:"role"`
	RegistrationDate time.Time `gorm:"autoCreateTime"                      json:"registration_date"`
	Image            string    `json:"image"`

	Farmer           *Farmer       `gorm:"foreignKey:UserID"     json:"-"`
	Orders           []Order       `gorm:"foreignKey:CustomerID" json:"-"`
	Reviews          []Review      `gorm:"foreignKey:CustomerID" json:"-"`
	SentMessages     []ChatMessage `gorm:"foreignKey:SenderID"   json:"-"`
	ReceivedMessages []ChatMessage `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeSave(tx *gorm.DB) error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	return ValidateRole(u.Role)
}

// Authenticate reports whether plain matches the stored password hash.
func (u *User) Authenticate(plain string) bool {
	return u.Password.Authenticate(plain)
}

type Farmer struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FarmName string `gorm:"unique"                   json:"farm_name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
	UserID   uint   `gorm:"unique"                   json:"user_id"`

	User     *User     `gorm:"foreignKey:UserID"   json:"-"`
	Products []Product `gorm:"foreignKey:FarmerID" json:"-"`
}

func (Farmer) TableName() string { return "farmer" }

type Product struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string `json:"name"`
	Price             int    `json:"price"`
	Description       string `json:"description"`
	QuantityAvailable int    `json:"quantity_available"`
	Category          string `json:"category"`
	Image             string `json:"image"`
	FarmerID          *uint  `json:"farmer_id"`

	Reviews []Review `gorm:"many2many:association_product_review" json:"-"`
	Orders  []Order  `gorm:"many2many:association_order_product"  json:"-"`
}

func (Product) TableName() string { return "product" }

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `json:"customer_id"`
	// Legacy single-product column, kept alongside the products association.
	ProductID       uint      `json:"product_id"`
	OrderDate       time.Time `gorm:"autoCreateTime" json:"order_date"`
	QuantityOrdered int       `json:"quantity_ordered"`
	TotalPrice      int       `json:"total_price"`
	OrderStatus     string    `json:"order_status"`

	Customer *User     `gorm:"foreignKey:CustomerID"               json:"-"`
	Product  *Product  `gorm:"foreignKey:ProductID"                json:"-"`
	Payments []Payment `gorm:"foreignKey:OrderID"                  json:"-"`
	Products []Product `gorm:"many2many:association_order_product" json:"-"`
}

func (Order) TableName() string { return "order" }

func (o *Order) BeforeSave(tx *gorm.DB) error {
	return ValidateQuantityOrdered(o.QuantityOrdered)
}

type Payment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       uint      `json:"order_id"`
	PaymentAmount int       `json:"payment_amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	TransactionID int       `json:"transaction_id"`

	Order *Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (Payment) TableName() string { return "payment" }

func (p *Payment) BeforeSave(tx *gorm.DB) error {
	return ValidatePaymentAmount(p.PaymentAmount)
}

type Review struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `json:"customer_id"`
	ProductID  uint      `json:"product_id"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments"`
	ReviewDate time.Time `gorm:"autoCreateTime" json:"review_date"`

	Customer *User    `gorm:"foreignKey:CustomerID" json:"-"`
	Product  *Product `gorm:"foreignKey:ProductID"  json:"-"`
}

func (Review) TableName() string { return "reviews" }

func (r *Review) BeforeSave(tx *gorm.DB) error {
	return ValidateRating(r.Rating)
}

type ChatMessage struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID    uint      `gorm:"not null"                 json:"sender_id"`
	ReceiverID  uint      `gorm:"not null"                 json:"receiver_id"`
	MessageText string    `json:"message_text"`
	Timestamp   time.Time `gorm:"autoCreateTime"           json:"timestamp"`

	Sender   *User `gorm:"foreignKey:SenderID"   json:"-"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (ChatMessage) TableName() string { return "chat_message" }

func (m *ChatMessage) BeforeSave(tx *gorm.DB) error {
	return ValidateMessageText(m.MessageText)
}

// Join tables for the many-to-many associations. GORM resolves the tagged
// relations against these same table and column names; declaring them as
// models lets the migrations create and drop them in dependency order.

type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey" json:"order_id"`
	ProductID uint `gorm:"primaryKey" json:"product_id"`
}

func (OrderProduct) TableName() string { return "association_order_product" }

type ProductReview struct {
	ProductID uint `gorm:"primaryKey" json:"product_id"`
	ReviewID  uint `gorm:"primaryKey" json:"review_id"`
}

func (ProductReview) TableName() string { return "association_product_review" }
