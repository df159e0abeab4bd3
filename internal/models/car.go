package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type CarType string

const (
	CarSedan     CarType = "Sedan"
	CarSUV       CarType = "SUV"
	CarWagon     CarType = "Wagon"
	CarTruck     CarType = "Truck"
	CarCoupe     CarType = "Coupe"
	CarHatchback CarType = "Hatchback"
)

const (
	MinModelYear     = 2015
	MaxModelYear     = 2023
	DefaultModelYear = 2023
	DefaultCountry   = "USA"
)

var (
	ErrInvalidYear    = fmt.Errorf("car model year must be between %d and %d", MinModelYear, MaxModelYear)
	ErrInvalidCarType = errors.New("unknown car type")
	ErrEmptyName      = errors.New("name is required")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CarMake struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Description string `gorm:"type:text" json:"description"`
	Country     string `gorm:"size:50;not null;default:USA" json:"country" validate:"max=50"`

	// каскад описан здесь: gorm строит FK car_models → car_makes со стороны has-many
	Models []CarModel `gorm:"foreignKey:CarMakeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"models" validate:"-"`
}

func (m *CarMake) BeforeSave(tx *gorm.DB) error {
	if m.Country == "" {
		m.Country = DefaultCountry
	}
	return translate(validate.Struct(m))
}

func (m CarMake) String() string {
	return m.Name
}

// CarModel всегда принадлежит одной марке; удаление марки удаляет её модели.
type CarModel struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CarMakeID uint    `gorm:"not null;index" json:"carMakeId"`
	CarMake   CarMake `json:"-" validate:"-"`

	Name      string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Type      CarType   `gorm:"type:varchar(10);not null;default:SUV" json:"type" validate:"oneof=Sedan SUV Wagon Truck Coupe Hatchback"`
	Year      int       `gorm:"not null" json:"year"`
	Price     *float64  `gorm:"type:decimal(10,2)" json:"price"`
	AddedDate time.Time `gorm:"not null" json:"addedDate"`
}

func (m *CarModel) BeforeSave(tx *gorm.DB) error {
	if m.Type == "" {
		m.Type = CarSUV
	}
	if m.AddedDate.IsZero() {
		m.AddedDate = time.Now()
	}
	if err := translate(validate.Struct(m)); err != nil {
		return err
	}
	return ValidateYear(m.Year)
}

func (m CarModel) String() string {
	return fmt.Sprintf("%s - %s (%d)", m.CarMake.Name, m.Name, m.Year)
}

// ValidateYear проверяет год модели без обращения к БД.
func ValidateYear(year int) error {
	if year < MinModelYear || year > MaxModelYear {
		return ErrInvalidYear
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Type":
			return fmt.Errorf("%w: %v", ErrInvalidCarType, fe.Value())
		case "Name":
			return ErrEmptyName
		}
	}
	return err
}
