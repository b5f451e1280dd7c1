package venue

// Area はレイアウト内の座席エリアを表す
type Area struct {
	ID          int64
	LayoutID    int64
	Description string
	CoordX      int
	CoordY      int
}

// NewArea は新しいエリアを作成する
func NewArea(layoutID int64, description string, coordX, coordY int) *Area {
	return &Area{
		LayoutID:    layoutID,
		Description: description,
		CoordX:      coordX,
		CoordY:      coordY,
	}
}

// Validate はエリアの検証を行う
func (a *Area) Validate() error {
	if a.LayoutID <= 0 {
		return ErrInvalidID
	}
	if a.Description == "" {
		return ErrAreaDescriptionRequired
	}
	if len([]rune(a.Description)) > MaxAreaDescriptionLen {
		return ErrAreaDescriptionTooLong
	}
	if a.CoordX < 0 || a.CoordY < 0 {
		return ErrAreaCoordsNegative
	}
	return nil
}
