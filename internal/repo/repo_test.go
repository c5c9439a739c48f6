package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farmlink-ke/farm_market/internal/migrations"
	"github.com/farmlink-ke/farm_market/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return &GormRepo{DB: db}
}

func newTestUser(t *testing.T, r *GormRepo, username, email, role string) *models.User {
	t.Helper()
	password, err := models.NewPassword("password")
	require.NoError(t, err)
	u := &models.User{Username: username, Email: email, Password: password, Role: role}
	require.NoError(t, r.CreateUser(context.Background(), u))
	return u
}

func TestUsernameAndEmailUnique(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)

	dup := &models.User{Username: "alice", Email: "other@x.com", Role: models.RoleCustomer}
	require.Error(t, r.CreateUser(ctx, dup))

	dup = &models.User{Username: "someone", Email: "a@x.com", Role: models.RoleCustomer}
	require.Error(t, r.CreateUser(ctx, dup))
}

func TestFarmerUniqueness(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u1 := newTestUser(t, r, "grower", "g@x.com", models.RoleFarmer)
	u2 := newTestUser(t, r, "grower2", "g2@x.com", models.RoleFarmer)

	require.NoError(t, r.CreateFarmer(ctx, &models.Farmer{FarmName: "GreenAcres", UserID: u1.ID}))

	// duplicate farm name
	require.Error(t, r.CreateFarmer(ctx, &models.Farmer{FarmName: "GreenAcres", UserID: u2.ID}))

	// second farmer profile for the same user
	require.Error(t, r.CreateFarmer(ctx, &models.Farmer{FarmName: "SunnySlope", UserID: u1.ID}))
}

func TestAuthenticate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)

	user, err := r.Authenticate(ctx, "alice", "password")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = r.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = r.Authenticate(ctx, "nobody", "password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteUserCascadesMessagesOnly(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	alice := newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)
	bob := newTestUser(t, r, "bob", "b@x.com", models.RoleCustomer)

	require.NoError(t, r.CreateMessage(ctx, &models.ChatMessage{
		SenderID: alice.ID, ReceiverID: bob.ID, MessageText: "hi bob",
	}))
	require.NoError(t, r.CreateMessage(ctx, &models.ChatMessage{
		SenderID: bob.ID, ReceiverID: alice.ID, MessageText: "hi alice",
	}))

	require.NoError(t, r.DeleteUser(ctx, alice.ID))

	_, err := r.GetUserByID(ctx, alice.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, r.DB.Model(&models.ChatMessage{}).Count(&count).Error)
	require.Zero(t, count)

	// bob never messaged anyone else and still exists
	_, err = r.GetUserByID(ctx, bob.ID)
	require.NoError(t, err)
}

func TestDeleteUserRestrictedByDependents(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	grower := newTestUser(t, r, "grower", "g@x.com", models.RoleFarmer)

	require.NoError(t, r.CreateFarmer(ctx, &models.Farmer{FarmName: "GreenAcres", UserID: grower.ID}))
	require.ErrorIs(t, r.DeleteUser(ctx, grower.ID), ErrUserHasRecords)

	_, err := r.GetUserByID(ctx, grower.ID)
	require.NoError(t, err)
}

func TestOrderLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	alice := newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)
	grower := newTestUser(t, r, "grower", "g@x.com", models.RoleFarmer)

	farmer := &models.Farmer{FarmName: "GreenAcres", Location: "Eldoret", UserID: grower.ID}
	require.NoError(t, r.CreateFarmer(ctx, farmer))

	product := &models.Product{Name: "Kale", Price: 10, QuantityAvailable: 5, FarmerID: &farmer.ID}
	require.NoError(t, r.CreateProduct(ctx, product))

	order := &models.Order{
		CustomerID:      alice.ID,
		ProductID:       product.ID,
		QuantityOrdered: 2,
		TotalPrice:      20,
		OrderStatus:     "pending",
	}
	require.NoError(t, r.CreateOrder(ctx, order))
	require.NotZero(t, order.ID)
	require.False(t, order.OrderDate.IsZero(), "order date should be auto-populated")

	// quantity 0 is rejected before the row is written
	bad := &models.Order{CustomerID: alice.ID, ProductID: product.ID, QuantityOrdered: 0}
	require.ErrorIs(t, r.CreateOrder(ctx, bad), models.ErrValidation)

	orders, err := r.ListUserOrders(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	products, err := r.ListOrderProducts(ctx, order)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, product.ID, products[0].ID)
}

func TestAddProductToOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	alice := newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)
	p1 := &models.Product{Name: "Kale", Price: 10}
	p2 := &models.Product{Name: "Carrots", Price: 7}
	require.NoError(t, r.CreateProduct(ctx, p1))
	require.NoError(t, r.CreateProduct(ctx, p2))

	order := &models.Order{CustomerID: alice.ID, ProductID: p1.ID, QuantityOrdered: 1, TotalPrice: 10}
	require.NoError(t, r.CreateOrder(ctx, order))
	require.NoError(t, r.AddProductToOrder(ctx, order, p2.ID))

	products, err := r.ListOrderProducts(ctx, order)
	require.NoError(t, err)
	require.Len(t, products, 2)
}

func TestPaymentsForOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	alice := newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)
	product := &models.Product{Name: "Kale", Price: 10}
	require.NoError(t, r.CreateProduct(ctx, product))

	order := &models.Order{CustomerID: alice.ID, ProductID: product.ID, QuantityOrdered: 2, TotalPrice: 20}
	require.NoError(t, r.CreateOrder(ctx, order))

	require.NoError(t, r.CreatePayment(ctx, &models.Payment{
		OrderID: order.ID, PaymentAmount: 20, PaymentMethod: "mpesa", Status: "completed", TransactionID: 555,
	}))
	require.ErrorIs(t, r.CreatePayment(ctx, &models.Payment{
		OrderID: order.ID, PaymentAmount: -5,
	}), models.ErrValidation)

	payments, err := r.ListOrderPayments(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, 20, payments[0].PaymentAmount)
}

func TestReviewsForProduct(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	alice := newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)
	product := &models.Product{Name: "Kale", Price: 10}
	require.NoError(t, r.CreateProduct(ctx, product))

	review := &models.Review{CustomerID: alice.ID, ProductID: product.ID, Rating: 4, Comments: "fresh"}
	require.NoError(t, r.CreateReview(ctx, review))
	require.False(t, review.ReviewDate.IsZero())

	reviews, err := r.ListProductReviews(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, 4, reviews[0].Rating)

	reviews, err = r.ListUserReviews(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
}

func TestConversation(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	alice := newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)
	bob := newTestUser(t, r, "bob", "b@x.com", models.RoleFarmer)
	carol := newTestUser(t, r, "carol", "c@x.com", models.RoleCustomer)

	require.NoError(t, r.CreateMessage(ctx, &models.ChatMessage{SenderID: alice.ID, ReceiverID: bob.ID, MessageText: "any kale left?"}))
	require.NoError(t, r.CreateMessage(ctx, &models.ChatMessage{SenderID: bob.ID, ReceiverID: alice.ID, MessageText: "plenty"}))
	require.NoError(t, r.CreateMessage(ctx, &models.ChatMessage{SenderID: carol.ID, ReceiverID: bob.ID, MessageText: "hello"}))

	msgs, err := r.ListConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	sent, err := r.ListSentMessages(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)

	received, err := r.ListReceivedMessages(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, received, 2)
}

// End-to-end scenario: customer and farmer sign up, the farmer lists a
// product, the customer orders it.
func TestMarketplaceFlow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	alice := newTestUser(t, r, "alice", "a@x.com", models.RoleCustomer)
	grower := newTestUser(t, r, "grower", "g@x.com", models.RoleFarmer)

	farmer := &models.Farmer{FarmName: "GreenAcres", UserID: grower.ID}
	require.NoError(t, r.CreateFarmer(ctx, farmer))

	// the same user cannot own a second farm profile
	require.Error(t, r.CreateFarmer(ctx, &models.Farmer{FarmName: "Hillside", UserID: grower.ID}))

	product := &models.Product{Name: "Kale", Price: 10, QuantityAvailable: 5, FarmerID: &farmer.ID}
	require.NoError(t, r.CreateProduct(ctx, product))

	listed, err := r.ListFarmerProducts(ctx, farmer.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	order := &models.Order{CustomerID: alice.ID, ProductID: product.ID, QuantityOrdered: 2, TotalPrice: 20}
	require.NoError(t, r.CreateOrder(ctx, order))
	require.False(t, order.OrderDate.IsZero())

	require.ErrorIs(t, r.CreateOrder(ctx, &models.Order{
		CustomerID: alice.ID, ProductID: product.ID, QuantityOrdered: 0,
	}), models.ErrValidation)
}
