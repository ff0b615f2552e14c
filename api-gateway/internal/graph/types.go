package graph

import "github.com/graphql-go/graphql"

// Output types resolve through passthrough, which reads the json tags of the
// domain structs and unwraps their Scalars.

var locationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Location",
	Fields: passthrough(graphql.Fields{
		"type":        &graphql.Field{Type: graphql.String},
		"coordinates": &graphql.Field{Type: graphql.NewList(graphql.Float)},
	}),
})

var restaurantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Restaurant",
	Fields: passthrough(graphql.Fields{
		"_id":                &graphql.Field{Type: graphql.String},
		"name":               &graphql.Field{Type: graphql.String},
		"logoUrl":            &graphql.Field{Type: graphql.String},
		"cuisine":            &graphql.Field{Type: graphql.NewList(graphql.String)},
		"address":            &graphql.Field{Type: graphql.String},
		"contactNumber":      &graphql.Field{Type: graphql.String},
		"location":           &graphql.Field{Type: locationType},
		"available":          &graphql.Field{Type: graphql.Boolean},
		"capacity":           &graphql.Field{Type: graphql.Int},
		"mainImagesUrl":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		"adminId":            &graphql.Field{Type: graphql.String},
		"restaurantDistance": &graphql.Field{Type: graphql.Float},
	}),
})

var itemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Item",
	Fields: passthrough(graphql.Fields{
		"_id":          &graphql.Field{Type: graphql.String},
		"restaurantId": &graphql.Field{Type: graphql.String},
		"name":         &graphql.Field{Type: graphql.String},
		"price":        &graphql.Field{Type: graphql.Int},
		"categoryItem": &graphql.Field{Type: graphql.String},
		"imageUrl":     &graphql.Field{Type: graphql.String},
		"description":  &graphql.Field{Type: graphql.String},
	}),
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: passthrough(graphql.Fields{
		"_id":                 &graphql.Field{Type: graphql.String},
		"customerName":        &graphql.Field{Type: graphql.String},
		"customerPhoneNumber": &graphql.Field{Type: graphql.String},
		"customerEmail":       &graphql.Field{Type: graphql.String},
		"tableNumber":         &graphql.Field{Type: graphql.String},
		"totalPrice":          &graphql.Field{Type: graphql.Int},
		"bookingDate":         &graphql.Field{Type: graphql.String},
		"numberOfPeople":      &graphql.Field{Type: graphql.Int},
		"restaurantId":        &graphql.Field{Type: graphql.String},
		"status":              &graphql.Field{Type: graphql.String},
	}),
})

var orderDetailType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderDetail",
	Fields: passthrough(graphql.Fields{
		"_id":      &graphql.Field{Type: graphql.String},
		"orderId":  &graphql.Field{Type: graphql.String},
		"itemId":   &graphql.Field{Type: graphql.String},
		"quantity": &graphql.Field{Type: graphql.Int},
		"price":    &graphql.Field{Type: graphql.Int},
	}),
})

var userProfileType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserProfile",
	Fields: passthrough(graphql.Fields{
		"_id":         &graphql.Field{Type: graphql.String},
		"name":        &graphql.Field{Type: graphql.String},
		"email":       &graphql.Field{Type: graphql.String},
		"phoneNumber": &graphql.Field{Type: graphql.String},
		"imageUrl":    &graphql.Field{Type: graphql.String},
	}),
})

var favouriteRestaurantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FavouriteRestaurant",
	Fields: passthrough(graphql.Fields{
		"_id":          &graphql.Field{Type: graphql.String},
		"userId":       &graphql.Field{Type: graphql.String},
		"restaurantId": &graphql.Field{Type: graphql.String},
		"restaurant":   &graphql.Field{Type: restaurantType},
	}),
})

var createOrderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrder",
	Fields: passthrough(graphql.Fields{
		"url":     &graphql.Field{Type: graphql.String},
		"orderId": &graphql.Field{Type: graphql.String},
		"qrCode":  &graphql.Field{Type: graphql.String},
	}),
})

var messageLoginType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MessageLogin",
	Fields: passthrough(graphql.Fields{
		"status":       &graphql.Field{Type: graphql.String},
		"access_token": &graphql.Field{Type: graphql.String},
	}),
})

var infoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Info",
	Fields: passthrough(graphql.Fields{
		"message": &graphql.Field{Type: graphql.String},
	}),
})

var inputDetailType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "InputDetail",
	Fields: graphql.InputObjectConfigFieldMap{
		"itemId":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"quantity": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var orderDetailsInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderDetails",
	Fields: graphql.InputObjectConfigFieldMap{
		"data": &graphql.InputObjectFieldConfig{Type: graphql.NewList(inputDetailType)},
	},
})

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}
