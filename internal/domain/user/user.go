package user

// User はチケット購入者のアカウントを表す
// 残高は購入・払い戻しによってのみ増減する不透明な数値
type User struct {
	ID      int64
	Name    string
	Balance int
}

// CanAfford は指定価格を支払えるかを返す
func (u *User) CanAfford(price int) bool {
	return u.Balance >= price
}
