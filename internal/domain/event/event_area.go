package event

// EventArea はイベント作成時にエリアからコピーされたスナップショットを表す
// AreaIDはコピー元のエリアを指すが、以後のエリア編集はここへ反映されない
type EventArea struct {
	ID          int64
	EventID     int64
	AreaID      int64
	Description string
	CoordX      int
	CoordY      int
	Price       int
}

// SnapshotArea はエリアのコピーからEventAreaを作成する
func SnapshotArea(eventID, areaID int64, description string, coordX, coordY, price int) *EventArea {
	return &EventArea{
		EventID:     eventID,
		AreaID:      areaID,
		Description: description,
		CoordX:      coordX,
		CoordY:      coordY,
		Price:       price,
	}
}

// Validate はイベントエリアの検証を行う
func (a *EventArea) Validate() error {
	if a.EventID <= 0 || a.AreaID <= 0 {
		return ErrInvalidID
	}
	if a.Price < 0 {
		return ErrEventAreaPriceNegative
	}
	return nil
}
