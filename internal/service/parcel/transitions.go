package parcel

import "parcelservice/internal/entities"

// successors is the full lifecycle transition table. A status missing
// from a successor list is rejected; terminal states have none.
var successors = map[entities.ParcelStatusType][]entities.ParcelStatusType{
	entities.ParcelPending:   {entities.ParcelAssigned, entities.ParcelCancelled},
	entities.ParcelAssigned:  {entities.ParcelInTransit, entities.ParcelDelivered, entities.ParcelFailed},
	entities.ParcelInTransit: {entities.ParcelDelivered, entities.ParcelFailed},
	entities.ParcelDelivered: nil,
	entities.ParcelFailed:    nil,
	entities.ParcelCancelled: nil,
}

// CanTransition reports whether the lifecycle table has an edge from one
// status to another.
func CanTransition(from, to entities.ParcelStatusType) bool {
	for _, next := range successors[from] {
		if next == to {
			return true
		}
	}
	return false
}
