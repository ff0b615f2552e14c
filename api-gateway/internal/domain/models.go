package domain

import "time"

// Entity fields are Scalars: the backend's JSON types are passed through as
// sent, and a missing field stays null.

type Restaurant struct {
	ID                 Scalar    `json:"_id"`
	Name               Scalar    `json:"name"`
	LogoURL            Scalar    `json:"logoUrl"`
	Cuisine            []Scalar  `json:"cuisine"`
	Address            Scalar    `json:"address"`
	ContactNumber      Scalar    `json:"contactNumber"`
	Location           *Location `json:"location"`
	Available          Scalar    `json:"available"`
	Capacity           Scalar    `json:"capacity"`
	MainImagesURL      []Scalar  `json:"mainImagesUrl"`
	AdminID            Scalar    `json:"adminId"`
	RestaurantDistance Scalar    `json:"restaurantDistance"`
}

type Location struct {
	Type        Scalar   `json:"type"`
	Coordinates []Scalar `json:"coordinates"`
}

type Item struct {
	ID           Scalar `json:"_id"`
	RestaurantID Scalar `json:"restaurantId"`
	Name         Scalar `json:"name"`
	Price        Scalar `json:"price"`
	CategoryItem Scalar `json:"categoryItem"`
	ImageURL     Scalar `json:"imageUrl"`
	Description  Scalar `json:"description"`
}

type Order struct {
	ID                  Scalar `json:"_id"`
	CustomerName        Scalar `json:"customerName"`
	CustomerPhoneNumber Scalar `json:"customerPhoneNumber"`
	CustomerEmail       Scalar `json:"customerEmail"`
	TableNumber         Scalar `json:"tableNumber"`
	TotalPrice          Scalar `json:"totalPrice"`
	BookingDate         Scalar `json:"bookingDate"`
	NumberOfPeople      Scalar `json:"numberOfPeople"`
	RestaurantID        Scalar `json:"restaurantId"`
	Status              Scalar `json:"status"`
}

type OrderDetail struct {
	ID       Scalar `json:"_id"`
	OrderID  Scalar `json:"orderId"`
	ItemID   Scalar `json:"itemId"`
	Quantity Scalar `json:"quantity"`
	Price    Scalar `json:"price"`
}

type UserProfile struct {
	ID          Scalar `json:"_id"`
	Name        Scalar `json:"name"`
	Email       Scalar `json:"email"`
	PhoneNumber Scalar `json:"phoneNumber"`
	ImageURL    Scalar `json:"imageUrl"`
}

type FavouriteRestaurant struct {
	ID           Scalar      `json:"_id"`
	UserID       Scalar      `json:"userId"`
	RestaurantID Scalar      `json:"restaurantId"`
	Restaurant   *Restaurant `json:"restaurant"`
}

// OrderInput holds the createOrder arguments. Nil fields were not supplied by
// the caller and are left out of the backend request.
type OrderInput struct {
	CustomerName        *string       `json:"customerName,omitempty"`
	CustomerEmail       *string       `json:"customerEmail,omitempty"`
	CustomerPhoneNumber *string       `json:"customerPhoneNumber,omitempty"`
	TableNumber         *string       `json:"tableNumber,omitempty"`
	TotalPrice          *int          `json:"totalPrice,omitempty"`
	BookingDate         *string       `json:"bookingDate,omitempty"`
	NumberOfPeople      *int          `json:"numberOfPeople,omitempty"`
	RestaurantID        *string       `json:"restaurantId,omitempty"`
	OrderDetails        []DetailInput `json:"orderDetails"`
}

type DetailInput struct {
	ItemID   *string `json:"itemId,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
}

type CreatedOrder struct {
	URL     Scalar  `json:"url"`
	OrderID Scalar  `json:"orderId"`
	QRCode  *string `json:"qrCode,omitempty"`
}

type Credentials struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type LoginResult struct {
	Status      Scalar `json:"status"`
	AccessToken Scalar `json:"access_token"`
}

type Info struct {
	Message Scalar `json:"message"`
}

const (
	EventOrderCreated        = "order_created"
	EventAvailabilityUpdated = "availability_updated"
)

type Event struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"orderId,omitempty"`
	RestaurantID string    `json:"restaurantId"`
	Available    *bool     `json:"available,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
