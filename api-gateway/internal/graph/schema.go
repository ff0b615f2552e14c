package graph

import (
	"context"

	"nuerpay-gateway/api-gateway/internal/domain"
	"nuerpay-gateway/api-gateway/internal/service"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// FailureRecorder counts fields whose backend call failed.
type FailureRecorder interface {
	FieldFailed(field string)
}

type Resolver struct {
	svc     service.GatewayServiceInterface
	log     *zap.Logger
	metrics FailureRecorder
}

func NewResolver(svc service.GatewayServiceInterface, log *zap.Logger, metrics FailureRecorder) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{svc: svc, log: log.Named("graphql"), metrics: metrics}
}

// NewSchema builds the gateway schema. Every query field is one backend call
// that resolves to null on failure; see policy.go.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
}

func (r *Resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"restaurants": &graphql.Field{
				Type: graphql.NewList(restaurantType),
				Args: graphql.FieldConfigArgument{
					"stringCoordinates": &graphql.ArgumentConfig{Type: graphql.String},
					"search":            &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.query("restaurants", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.Restaurants(ctx, stringArg(args, "stringCoordinates"), stringArg(args, "search"))
				}),
			},
			"restaurant": &graphql.Field{
				Type: restaurantType,
				Args: idArg(),
				Resolve: r.query("restaurant", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.Restaurant(ctx, stringArg(args, "_id"))
				}),
			},
			"itemsByRestaurantId": &graphql.Field{
				Type: graphql.NewList(itemType),
				Args: idArg(),
				Resolve: r.query("itemsByRestaurantId", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.ItemsByRestaurant(ctx, stringArg(args, "_id"))
				}),
			},
			"orderById": &graphql.Field{
				Type: orderType,
				Args: idArg(),
				Resolve: r.query("orderById", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.OrderByID(ctx, stringArg(args, "_id"))
				}),
			},
			"orderDetails": &graphql.Field{
				Type: graphql.NewList(orderDetailType),
				Args: graphql.FieldConfigArgument{
					"orderId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.query("orderDetails", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.OrderDetails(ctx, AccessToken(ctx), stringArg(args, "orderId"))
				}),
			},
			"userProfile": &graphql.Field{
				Type: userProfileType,
				Args: idArg(),
				Resolve: r.query("userProfile", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.UserProfile(ctx, AccessToken(ctx), stringArg(args, "_id"))
				}),
			},
			"favouriteRestaurants": &graphql.Field{
				Type: graphql.NewList(favouriteRestaurantType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.query("favouriteRestaurants", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.FavouriteRestaurants(ctx, AccessToken(ctx), stringArg(args, "userId"))
				}),
			},
			"getRestaurantByAdmin": &graphql.Field{
				Type: graphql.NewList(restaurantType),
				Resolve: r.query("getRestaurantByAdmin", func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
					return r.svc.RestaurantsByAdmin(ctx, AccessToken(ctx))
				}),
			},
			"getOrdersByRestaurantId": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: idArg(),
				Resolve: r.query("getOrdersByRestaurantId", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.OrdersByRestaurant(ctx, AccessToken(ctx), stringArg(args, "_id"))
				}),
			},
			"getBookedByRestaurantId": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: idArg(),
				Resolve: r.query("getBookedByRestaurantId", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.BookedByRestaurant(ctx, AccessToken(ctx), stringArg(args, "_id"))
				}),
			},
		},
	})
}

func (r *Resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createOrder": &graphql.Field{
				Type: createOrderType,
				Args: graphql.FieldConfigArgument{
					"customerName":        &graphql.ArgumentConfig{Type: graphql.String},
					"customerEmail":       &graphql.ArgumentConfig{Type: graphql.String},
					"customerPhoneNumber": &graphql.ArgumentConfig{Type: graphql.String},
					"tableNumber":         &graphql.ArgumentConfig{Type: graphql.String},
					"totalPrice":          &graphql.ArgumentConfig{Type: graphql.Int},
					"bookingDate":         &graphql.ArgumentConfig{Type: graphql.String},
					"numberOfPeople":      &graphql.ArgumentConfig{Type: graphql.Int},
					"restaurantId":        &graphql.ArgumentConfig{Type: graphql.String},
					"orderDetails":        &graphql.ArgumentConfig{Type: orderDetailsInputType},
				},
				Resolve: r.nullOnError("createOrder", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.CreateOrder(ctx, orderInput(args))
				}),
			},
			"updateAvailability": &graphql.Field{
				Type: infoType,
				Args: graphql.FieldConfigArgument{
					"_id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"available": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: r.nullOnError("updateAvailability", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.UpdateAvailability(ctx, AccessToken(ctx), stringArg(args, "_id"), optBool(args, "available"))
				}),
			},
			"login": &graphql.Field{
				Type: messageLoginType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.String},
					"password": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.surfaceError("login", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
					return r.svc.Login(ctx, domain.Credentials{
						Email:    optString(args, "email"),
						Password: optString(args, "password"),
					})
				}),
			},
		},
	})
}
