package entities

type Tag struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"size:200;uniqueIndex" json:"name"`
	Color string `gorm:"size:7;uniqueIndex" json:"color"`
	Slug  string `gorm:"size:200;uniqueIndex" json:"slug"`
}
