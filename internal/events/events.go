package events

import (
	"strconv"

	"github.com/Skotchmaster/sims/internal/models"
)

const (
	ItemCreated  = "item_created"
	ItemUpdated  = "item_updated"
	ItemDeleted  = "item_deleted"
	ItemSold     = "item_sold"
	UserSignedUp = "user_signed_up"
)

func Key(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func ItemEvent(typ string, item *models.Item) map[string]any {
	return map[string]any{
		"type":       typ,
		"itemID":     item.ID,
		"name":       item.Name,
		"quantity":   item.Quantity,
		"sold_units": item.SoldUnits,
	}
}

func ItemDeletedEvent(id uint) map[string]any {
	return map[string]any{
		"type":   ItemDeleted,
		"itemID": id,
	}
}

func SaleEvent(item *models.Item, qty int, soldBy string) map[string]any {
	ev := ItemEvent(ItemSold, item)
	ev["sold"] = qty
	ev["sold_by"] = soldBy
	return ev
}

func UserEvent(user *models.User) map[string]any {
	return map[string]any{
		"type":   UserSignedUp,
		"userID": user.ID,
		"name":   user.Name,
		"email":  user.Email,
	}
}
