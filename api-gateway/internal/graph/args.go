package graph

import "nuerpay-gateway/api-gateway/internal/domain"

func stringArg(args map[string]interface{}, name string) string {
	if value, ok := args[name].(string); ok {
		return value
	}
	return ""
}

func optString(args map[string]interface{}, name string) *string {
	if value, ok := args[name].(string); ok {
		return &value
	}
	return nil
}

func optInt(args map[string]interface{}, name string) *int {
	if value, ok := args[name].(int); ok {
		return &value
	}
	return nil
}

func optBool(args map[string]interface{}, name string) *bool {
	if value, ok := args[name].(bool); ok {
		return &value
	}
	return nil
}

// orderInput copies the createOrder arguments. orderDetails is flattened to
// its data list and stays nil when the argument or its data is missing.
func orderInput(args map[string]interface{}) domain.OrderInput {
	return domain.OrderInput{
		CustomerName:        optString(args, "customerName"),
		CustomerEmail:       optString(args, "customerEmail"),
		CustomerPhoneNumber: optString(args, "customerPhoneNumber"),
		TableNumber:         optString(args, "tableNumber"),
		TotalPrice:          optInt(args, "totalPrice"),
		BookingDate:         optString(args, "bookingDate"),
		NumberOfPeople:      optInt(args, "numberOfPeople"),
		RestaurantID:        optString(args, "restaurantId"),
		OrderDetails:        orderDetails(args),
	}
}

func orderDetails(args map[string]interface{}) []domain.DetailInput {
	wrapper, ok := args["orderDetails"].(map[string]interface{})
	if !ok {
		return nil
	}
	data, ok := wrapper["data"].([]interface{})
	if !ok {
		return nil
	}

	details := make([]domain.DetailInput, 0, len(data))
	for _, raw := range data {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		details = append(details, domain.DetailInput{
			ItemID:   optString(entry, "itemId"),
			Quantity: optInt(entry, "quantity"),
		})
	}
	return details
}
