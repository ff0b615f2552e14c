package service

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"nuerpay-gateway/api-gateway/internal/domain"
	"nuerpay-gateway/api-gateway/internal/logging"

	"go.uber.org/zap"
)

type GatewayService struct {
	backend   Backend
	cache     ResponseCache
	publisher EventPublisher
	qr        QRGenerator
	log       *zap.Logger
	now       func() time.Time
}

// NewGatewayService wires the relay. cache, publisher and qr are optional and
// may be nil.
func NewGatewayService(backend Backend, cache ResponseCache, publisher EventPublisher, qr QRGenerator, log *zap.Logger) *GatewayService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GatewayService{
		backend:   backend,
		cache:     cache,
		publisher: publisher,
		qr:        qr,
		log:       log,
		now:       time.Now,
	}
}

func (s *GatewayService) Restaurants(ctx context.Context, coordinates, search string) ([]domain.Restaurant, error) {
	var key string
	if s.cache != nil {
		key = s.cache.RestaurantsKey(coordinates)
	}
	restaurants, err := cached(ctx, s, key, func() ([]domain.Restaurant, error) {
		return s.backend.Restaurants(ctx, coordinates)
	})
	if err != nil {
		return nil, err
	}
	return FilterByName(restaurants, search), nil
}

func (s *GatewayService) Restaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var key string
	if s.cache != nil {
		key = s.cache.RestaurantKey(id)
	}
	return cached(ctx, s, key, func() (*domain.Restaurant, error) {
		return s.backend.Restaurant(ctx, id)
	})
}

func (s *GatewayService) ItemsByRestaurant(ctx context.Context, restaurantID string) ([]domain.Item, error) {
	var key string
	if s.cache != nil {
		key = s.cache.ItemsKey(restaurantID)
	}
	return cached(ctx, s, key, func() ([]domain.Item, error) {
		return s.backend.RestaurantItems(ctx, restaurantID)
	})
}

func (s *GatewayService) OrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.backend.Order(ctx, id)
}

func (s *GatewayService) OrderDetails(ctx context.Context, token, orderID string) ([]domain.OrderDetail, error) {
	return s.backend.OrderDetails(ctx, token, orderID)
}

func (s *GatewayService) UserProfile(ctx context.Context, token, id string) (*domain.UserProfile, error) {
	return s.backend.UserProfile(ctx, token, id)
}

func (s *GatewayService) FavouriteRestaurants(ctx context.Context, token, userID string) ([]domain.FavouriteRestaurant, error) {
	return s.backend.FavouriteRestaurants(ctx, token, userID)
}

func (s *GatewayService) RestaurantsByAdmin(ctx context.Context, token string) ([]domain.Restaurant, error) {
	return s.backend.AdminRestaurants(ctx, token)
}

func (s *GatewayService) OrdersByRestaurant(ctx context.Context, token, restaurantID string) ([]domain.Order, error) {
	return s.backend.RestaurantOrders(ctx, token, restaurantID)
}

func (s *GatewayService) BookedByRestaurant(ctx context.Context, token, restaurantID string) ([]domain.Order, error) {
	return s.backend.RestaurantBooked(ctx, token, restaurantID)
}

func (s *GatewayService) CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.CreatedOrder, error) {
	created, err := s.backend.CreateOrder(ctx, input)
	if err != nil || created == nil {
		return created, err
	}

	if url := created.URL.String(); s.qr != nil && url != "" {
		png, err := s.qr.Generate(url)
		if err != nil {
			s.logger(ctx).Warn("failed to generate order QR code", zap.String("order_id", created.OrderID.String()), zap.Error(err))
		} else {
			encoded := base64.StdEncoding.EncodeToString(png)
			created.QRCode = &encoded
		}
	}

	var restaurantID string
	if input.RestaurantID != nil {
		restaurantID = *input.RestaurantID
	}
	s.publish(ctx, domain.Event{
		Type:         domain.EventOrderCreated,
		OrderID:      created.OrderID.String(),
		RestaurantID: restaurantID,
		Timestamp:    s.now(),
	})

	return created, nil
}

func (s *GatewayService) UpdateAvailability(ctx context.Context, token, restaurantID string, available *bool) (*domain.Info, error) {
	info, err := s.backend.UpdateAvailability(ctx, token, restaurantID, available)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateRestaurant(ctx, restaurantID); err != nil {
			s.logger(ctx).Warn("failed to invalidate restaurant cache", zap.String("restaurant_id", restaurantID), zap.Error(err))
		}
	}

	s.publish(ctx, domain.Event{
		Type:         domain.EventAvailabilityUpdated,
		RestaurantID: restaurantID,
		Available:    available,
		Timestamp:    s.now(),
	})

	return info, nil
}

func (s *GatewayService) Login(ctx context.Context, credentials domain.Credentials) (*domain.LoginResult, error) {
	return s.backend.Login(ctx, credentials)
}

// FilterByName keeps the restaurants whose name contains search, ignoring
// case. An empty search keeps everything and a nil list stays nil.
func FilterByName(restaurants []domain.Restaurant, search string) []domain.Restaurant {
	if search == "" || restaurants == nil {
		return restaurants
	}
	needle := strings.ToLower(search)
	filtered := make([]domain.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if strings.Contains(strings.ToLower(restaurant.Name.String()), needle) {
			filtered = append(filtered, restaurant)
		}
	}
	return filtered
}

func (s *GatewayService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger(ctx).Warn("failed to publish event", zap.String("type", event.Type), zap.Error(err))
	}
}

func (s *GatewayService) logger(ctx context.Context) *zap.Logger {
	return logging.FromContext(ctx, s.log)
}

// cached reads key from the response cache and falls back to fetch on a miss,
// storing the fresh value. An empty key bypasses the cache. Cache failures are
// logged and never fail the read.
func cached[T any](ctx context.Context, s *GatewayService, key string, fetch func() (T, error)) (T, error) {
	if s.cache == nil || key == "" {
		return fetch()
	}

	var value T
	hit, err := s.cache.Get(ctx, key, &value)
	if err != nil {
		s.logger(ctx).Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return value, nil
	}

	value, err = fetch()
	if err != nil {
		return value, err
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger(ctx).Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
