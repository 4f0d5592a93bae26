package models

const StatusAvailable = "Available"

type Item struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name        string  `gorm:"not null;index"              json:"name"`
	Description string  `gorm:"not null"                    json:"description"`
	Price       float64 `gorm:"not null"                    json:"price"`
	Quantity    int     `gorm:"not null"                    json:"quantity"`
	Date        Date    `gorm:"type:date;not null"          json:"date"`
	Status      string  `gorm:"not null;default:Available"  json:"status"`
	SoldUnits   int     `gorm:"not null;default:0"          json:"sold_units"`
	Cost        float64 `gorm:"not null;default:0"          json:"cost"`
}

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null;index"           json:"name"`
	Password string `gorm:"not null"                 json:"-"`
	Email    string `gorm:"not null;index"           json:"email"`
}
