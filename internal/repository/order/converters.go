package order

import "herbmart/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:             o.ID,
		UserID:         o.UserID,
		Status:         entities.OrderStatusType(o.Status),
		DeliveryStatus: entities.DeliveryStatusType(o.DeliveryStatus),
		AgentID:        o.AgentID,
		TrackingNumber: o.TrackingNumber,
		TotalAmount:    o.TotalAmount,
		OrderedAt:      o.OrderedAt,
		AssignedAt:     o.AssignedAt,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if o.DestLatitude != nil && o.DestLongitude != nil {
		order.Destination = &entities.GeoPoint{
			Latitude:  *o.DestLatitude,
			Longitude: *o.DestLongitude,
		}
	}

	order.Items = make([]entities.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return order
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	orderDB := &OrderDB{
		ID:             o.ID,
		UserID:         o.UserID,
		Status:         o.Status.String(),
		DeliveryStatus: o.DeliveryStatus.String(),
		AgentID:        o.AgentID,
		TrackingNumber: o.TrackingNumber,
		TotalAmount:    o.TotalAmount,
		OrderedAt:      o.OrderedAt,
		AssignedAt:     o.AssignedAt,
	}

	if o.Destination != nil {
		orderDB.DestLatitude = &o.Destination.Latitude
		orderDB.DestLongitude = &o.Destination.Longitude
	}

	orderDB.Items = make([]OrderItemDB, 0, len(o.Items))
	for _, item := range o.Items {
		orderDB.Items = append(orderDB.Items, OrderItemDB{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return orderDB
}
