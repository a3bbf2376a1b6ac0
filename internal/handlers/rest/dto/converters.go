package dto

import "parcelservice/internal/entities"

func ParcelFromEntity(p entities.Parcel) Parcel {
	out := Parcel{
		ID:              p.ID,
		OwnerEmail:      p.OwnerEmail,
		PickupAddress:   p.PickupAddress,
		DeliveryAddress: p.DeliveryAddress,
		PickupLocation: Location{
			Lat: p.PickupLocation.Lat,
			Lon: p.PickupLocation.Lon,
		},
		DeliveryLocation: Location{
			Lat: p.DeliveryLocation.Lat,
			Lon: p.DeliveryLocation.Lon,
		},
		ParcelType:  p.ParcelType.String(),
		PaymentType: p.PaymentType.String(),
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Agent != nil {
		out.Agent = &ParcelAgent{
			Email: p.Agent.Email,
			Name:  p.Agent.Name,
			Phone: p.Agent.Phone,
		}
	}
	return out
}

func ParcelListFromEntities(parcels []entities.Parcel) []Parcel {
	out := make([]Parcel, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, ParcelFromEntity(p))
	}
	return out
}
