package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&User{}, &ChatMessage{}, &Farmer{}, &Product{}, &Order{},
		&Review{}, &OrderProduct{}, &ProductReview{}, &Payment{},
	))
	return db
}

func testUser(t *testing.T, db *gorm.DB, username, email, role string) *User {
	t.Helper()
	password, err := NewPassword("password")
	require.NoError(t, err)
	u := &User{Username: username, Email: email, Password: password, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestUserSaveValidatesEmail(t *testing.T) {
	db := testDB(t)

	err := db.Create(&User{Username: "bob", Email: "not-an-email", Role: RoleCustomer}).Error
	require.ErrorIs(t, err, ErrValidation)

	err = db.Create(&User{Username: "bob", Email: "", Role: RoleCustomer}).Error
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, db.Create(&User{Username: "bob", Email: "bob@x.com", Role: RoleCustomer}).Error)
}

func TestUserSaveValidatesRole(t *testing.T) {
	db := testDB(t)

	err := db.Create(&User{Username: "eve", Email: "eve@x.com", Role: "admin"}).Error
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, db.Create(&User{Username: "eve", Email: "eve@x.com", Role: RoleFarmer}).Error)
}

func TestUserUpdateRunsValidators(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db, "alice", "a@x.com", RoleCustomer)

	u.Email = "broken"
	require.ErrorIs(t, db.Save(u).Error, ErrValidation)

	u.Email = "alice@x.com"
	require.NoError(t, db.Save(u).Error)
}

func TestOrderSaveValidatesQuantity(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db, "alice", "a@x.com", RoleCustomer)

	err := db.Create(&Order{CustomerID: u.ID, QuantityOrdered: 0}).Error
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, db.Create(&Order{CustomerID: u.ID, QuantityOrdered: 1}).Error)
}

func TestReviewSaveValidatesRating(t *testing.T) {
	db := testDB(t)

	require.ErrorIs(t, db.Create(&Review{Rating: 0}).Error, ErrValidation)
	require.ErrorIs(t, db.Create(&Review{Rating: 6}).Error, ErrValidation)
	require.NoError(t, db.Create(&Review{Rating: 5}).Error)
}

func TestPaymentSaveValidatesAmount(t *testing.T) {
	db := testDB(t)

	require.ErrorIs(t, db.Create(&Payment{PaymentAmount: -1}).Error, ErrValidation)
	require.NoError(t, db.Create(&Payment{PaymentAmount: 0}).Error)
}

func TestChatMessageSaveValidatesText(t *testing.T) {
	db := testDB(t)
	a := testUser(t, db, "a", "a@x.com", RoleCustomer)
	b := testUser(t, db, "b", "b@x.com", RoleCustomer)

	err := db.Create(&ChatMessage{SenderID: a.ID, ReceiverID: b.ID, MessageText: ""}).Error
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, db.Create(&ChatMessage{SenderID: a.ID, ReceiverID: b.ID, MessageText: "hi"}).Error)
}

func TestPasswordRoundTripsThroughStore(t *testing.T) {
	db := testDB(t)
	testUser(t, db, "carol", "c@x.com", RoleCustomer)

	var loaded User
	require.NoError(t, db.Where("username = ?", "carol").First(&loaded).Error)
	require.True(t, loaded.Authenticate("password"))
	require.False(t, loaded.Authenticate("wrong"))
}
