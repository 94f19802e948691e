package catalog

import (
	"strconv"

	"github.com/google/uuid"
)

// ProductID identifies an input or output product classification.
type ProductID int64

func (p ProductID) String() string {
	return strconv.FormatInt(int64(p), 10)
}

// InHouse is the requester identity used for the mill's own production.
var InHouse = uuid.Nil

func IsInHouse(requesterID uuid.UUID) bool {
	return requesterID == InHouse
}
