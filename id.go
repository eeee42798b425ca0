package tradecore

import "github.com/google/uuid"

// Opaque 128-bit identifiers. All three are comparable and usable as map keys.
type (
	UserID  uuid.UUID
	OrderID uuid.UUID
	TradeID uuid.UUID
)

func NewUserID() UserID   { return UserID(uuid.New()) }
func NewOrderID() OrderID { return OrderID(uuid.New()) }
func NewTradeID() TradeID { return TradeID(uuid.New()) }

func ParseUserID(raw string) (UserID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return UserID{}, ErrInvalidParam
	}
	return UserID(id), nil
}

func ParseOrderID(raw string) (OrderID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return OrderID{}, ErrInvalidParam
	}
	return OrderID(id), nil
}

func ParseTradeID(raw string) (TradeID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return TradeID{}, ErrInvalidParam
	}
	return TradeID(id), nil
}

func (id UserID) String() string  { return uuid.UUID(id).String() }
func (id OrderID) String() string { return uuid.UUID(id).String() }
func (id TradeID) String() string { return uuid.UUID(id).String() }
