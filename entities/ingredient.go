package entities

type Ingredient struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"size:200;index" json:"name"`
	MeasurementUnit string `gorm:"size:50" json:"measurement_unit"`
}
