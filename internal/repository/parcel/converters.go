package parcel

import (
	"parcelservice/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	parcel := &entities.Parcel{
		ID:              p.ID,
		OwnerEmail:      p.OwnerEmail,
		PickupAddress:   p.PickupAddress,
		DeliveryAddress: p.DeliveryAddress,
		PickupLocation: entities.Coordinate{
			Lat: p.PickupLat,
			Lon: p.PickupLon,
		},
		DeliveryLocation: entities.Coordinate{
			Lat: p.DeliveryLat,
			Lon: p.DeliveryLon,
		},
		ParcelType:  entities.ParcelSizeType(p.ParcelType),
		PaymentType: entities.PaymentType(p.PaymentType),
		Status:      entities.ParcelStatusType(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.AgentEmail != nil {
		parcel.Agent = &entities.AgentRef{
			Email: *p.AgentEmail,
		}
		if p.AgentName != nil {
			parcel.Agent.Name = *p.AgentName
		}
		if p.AgentPhone != nil {
			parcel.Agent.Phone = *p.AgentPhone
		}
	}

	return parcel
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{
		ID:              parcelModify.ID,
		OwnerEmail:      parcelModify.OwnerEmail,
		PickupAddress:   parcelModify.PickupAddress,
		DeliveryAddress: parcelModify.DeliveryAddress,
		AgentEmail:      parcelModify.AgentEmail,
		AgentName:       parcelModify.AgentName,
		AgentPhone:      parcelModify.AgentPhone,
	}

	if parcelModify.PickupLocation != nil {
		parcelDB.PickupLat = &parcelModify.PickupLocation.Lat
		parcelDB.PickupLon = &parcelModify.PickupLocation.Lon
	}
	if parcelModify.DeliveryLocation != nil {
		parcelDB.DeliveryLat = &parcelModify.DeliveryLocation.Lat
		parcelDB.DeliveryLon = &parcelModify.DeliveryLocation.Lon
	}
	if parcelModify.ParcelType != nil {
		parcelType := parcelModify.ParcelType.String()
		parcelDB.ParcelType = &parcelType
	}
	if parcelModify.PaymentType != nil {
		paymentType := parcelModify.PaymentType.String()
		parcelDB.PaymentType = &paymentType
	}
	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
