package service

import (
	"context"

	"nuerpay-gateway/api-gateway/internal/backend"
	"nuerpay-gateway/api-gateway/internal/domain"
	"nuerpay-gateway/api-gateway/internal/storage"
)

type GatewayServiceInterface interface {
	Restaurants(ctx context.Context, coordinates, search string) ([]domain.Restaurant, error)
	Restaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ItemsByRestaurant(ctx context.Context, restaurantID string) ([]domain.Item, error)
	OrderByID(ctx context.Context, id string) (*domain.Order, error)
	OrderDetails(ctx context.Context, token, orderID string) ([]domain.OrderDetail, error)
	UserProfile(ctx context.Context, token, id string) (*domain.UserProfile, error)
	FavouriteRestaurants(ctx context.Context, token, userID string) ([]domain.FavouriteRestaurant, error)
	RestaurantsByAdmin(ctx context.Context, token string) ([]domain.Restaurant, error)
	OrdersByRestaurant(ctx context.Context, token, restaurantID string) ([]domain.Order, error)
	BookedByRestaurant(ctx context.Context, token, restaurantID string) ([]domain.Order, error)
	CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.CreatedOrder, error)
	UpdateAvailability(ctx context.Context, token, restaurantID string, available *bool) (*domain.Info, error)
	Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResult, error)
}

// Backend is the REST API the gateway relays to.
type Backend interface {
	Restaurants(ctx context.Context, coordinates string) ([]domain.Restaurant, error)
	Restaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	RestaurantItems(ctx context.Context, restaurantID string) ([]domain.Item, error)
	Order(ctx context.Context, id string) (*domain.Order, error)
	OrderDetails(ctx context.Context, token, orderID string) ([]domain.OrderDetail, error)
	UserProfile(ctx context.Context, token, id string) (*domain.UserProfile, error)
	FavouriteRestaurants(ctx context.Context, token, userID string) ([]domain.FavouriteRestaurant, error)
	AdminRestaurants(ctx context.Context, token string) ([]domain.Restaurant, error)
	RestaurantOrders(ctx context.Context, token, restaurantID string) ([]domain.Order, error)
	RestaurantBooked(ctx context.Context, token, restaurantID string) ([]domain.Order, error)
	CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.CreatedOrder, error)
	UpdateAvailability(ctx context.Context, token, restaurantID string, available *bool) (*domain.Info, error)
	Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResult, error)
}

type ResponseCache interface {
	RestaurantsKey(coordinates string) string
	RestaurantKey(id string) string
	ItemsKey(restaurantID string) string
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	InvalidateRestaurant(ctx context.Context, id string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

var (
	_ GatewayServiceInterface = (*GatewayService)(nil)
	_ Backend                 = (*backend.Client)(nil)
	_ ResponseCache           = (*storage.RedisCache)(nil)
	_ EventPublisher          = (*storage.KafkaPublisher)(nil)
)
