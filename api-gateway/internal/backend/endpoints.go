package backend

import (
	"context"
	"net/http"
	"net/url"

	"nuerpay-gateway/api-gateway/internal/domain"
)

func (c *Client) Restaurants(ctx context.Context, coordinates string) ([]domain.Restaurant, error) {
	header := http.Header{}
	if coordinates != "" {
		header.Set("coordinates", coordinates)
	}

	var restaurants []domain.Restaurant
	err := c.do(ctx, call{
		endpoint: "restaurants",
		method:   http.MethodGet,
		path:     "/restaurants",
		header:   header,
	}, &restaurants)
	return restaurants, err
}

func (c *Client) Restaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var restaurant *domain.Restaurant
	err := c.do(ctx, call{
		endpoint: "restaurant",
		method:   http.MethodGet,
		path:     "/restaurants/" + url.PathEscape(id),
	}, &restaurant)
	return restaurant, err
}

func (c *Client) RestaurantItems(ctx context.Context, restaurantID string) ([]domain.Item, error) {
	var envelope struct {
		Item []domain.Item `json:"item"`
	}
	err := c.do(ctx, call{
		endpoint: "restaurant_items",
		method:   http.MethodGet,
		path:     "/restaurants/" + url.PathEscape(restaurantID) + "/items",
	}, &envelope)
	return envelope.Item, err
}

func (c *Client) Order(ctx context.Context, id string) (*domain.Order, error) {
	var order *domain.Order
	err := c.do(ctx, call{
		endpoint: "order",
		method:   http.MethodGet,
		path:     "/orders/" + url.PathEscape(id),
	}, &order)
	return order, err
}

func (c *Client) OrderDetails(ctx context.Context, token, orderID string) ([]domain.OrderDetail, error) {
	query := url.Values{}
	if orderID != "" {
		query.Set("orderId", orderID)
	}

	var details []domain.OrderDetail
	err := c.do(ctx, call{
		endpoint: "order_details",
		method:   http.MethodGet,
		path:     "/orderDetails",
		query:    query,
		header:   withToken(token),
	}, &details)
	return details, err
}

func (c *Client) UserProfile(ctx context.Context, token, id string) (*domain.UserProfile, error) {
	var profile *domain.UserProfile
	err := c.do(ctx, call{
		endpoint: "user_profile",
		method:   http.MethodGet,
		path:     "/userProfiles/" + url.PathEscape(id),
		header:   withToken(token),
	}, &profile)
	return profile, err
}

func (c *Client) FavouriteRestaurants(ctx context.Context, token, userID string) ([]domain.FavouriteRestaurant, error) {
	query := url.Values{}
	if userID != "" {
		query.Set("userId", userID)
	}

	var favourites []domain.FavouriteRestaurant
	err := c.do(ctx, call{
		endpoint: "favourite_restaurants",
		method:   http.MethodGet,
		path:     "/favouriteRestaurants",
		query:    query,
		header:   withToken(token),
	}, &favourites)
	return favourites, err
}

func (c *Client) AdminRestaurants(ctx context.Context, token string) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	err := c.do(ctx, call{
		endpoint: "admin_restaurants",
		method:   http.MethodGet,
		path:     "/restaurants/admin",
		header:   withToken(token),
	}, &restaurants)
	return restaurants, err
}

func (c *Client) RestaurantOrders(ctx context.Context, token, restaurantID string) ([]domain.Order, error) {
	var envelope struct {
		Orders []domain.Order `json:"orders"`
	}
	err := c.do(ctx, call{
		endpoint: "restaurant_orders",
		method:   http.MethodGet,
		path:     "/restaurants/" + url.PathEscape(restaurantID) + "/orders",
		header:   withToken(token),
	}, &envelope)
	return envelope.Orders, err
}

func (c *Client) RestaurantBooked(ctx context.Context, token, restaurantID string) ([]domain.Order, error) {
	var envelope struct {
		Booked []domain.Order `json:"booked"`
	}
	err := c.do(ctx, call{
		endpoint: "restaurant_booked",
		method:   http.MethodGet,
		path:     "/restaurants/" + url.PathEscape(restaurantID) + "/booked",
		header:   withToken(token),
	}, &envelope)
	return envelope.Booked, err
}

func (c *Client) CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.CreatedOrder, error) {
	var created *domain.CreatedOrder
	err := c.do(ctx, call{
		endpoint: "create_order",
		method:   http.MethodPost,
		path:     "/customers/orders",
		body:     input,
	}, &created)
	return created, err
}

func (c *Client) UpdateAvailability(ctx context.Context, token, restaurantID string, available *bool) (*domain.Info, error) {
	body := struct {
		Available *bool `json:"available,omitempty"`
	}{Available: available}

	var info *domain.Info
	err := c.do(ctx, call{
		endpoint: "update_availability",
		method:   http.MethodPatch,
		path:     "/restaurants/" + url.PathEscape(restaurantID),
		header:   withToken(token),
		body:     body,
	}, &info)
	return info, err
}

func (c *Client) Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResult, error) {
	var result *domain.LoginResult
	err := c.do(ctx, call{
		endpoint: "login",
		method:   http.MethodPost,
		path:     "/admin/login",
		body:     credentials,
	}, &result)
	return result, err
}
